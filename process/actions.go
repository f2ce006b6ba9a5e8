package process

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"sdfc/importer"
	"sdfc/state"
)

// Check parses documents, verifies joint references and resolves every
// resource they use. Nothing is written.
func Check(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, checkAction{})
}

// Dump writes readable tree of every parsed document.
func Dump(ctx context.Context, cmd *cli.Command) error {
	act := dumpAction{}
	if cmd.Bool("stdout") {
		act.out = os.Stdout
	}
	return run(ctx, cmd, act)
}

// Import instantiates documents into scene plans saved as YAML files.
func Import(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, importAction{})
}

const (
	dumpExt = ".txt"
	planExt = ".plan.yaml"
)

type checkAction struct{}

func (checkAction) name() string { return "check" }

func (checkAction) run(ctx context.Context, d *document, _ string, log *zap.Logger) error {
	// references into included models and resources are only verified by
	// actual import
	plan, err := instantiate(ctx, d, log)
	if err != nil {
		return err
	}
	log.Info("Document is valid", zap.String("file", d.src), zap.String("version", d.root.Version),
		zap.Int("models", len(plan.Created(importer.OpAddModel))),
		zap.Int("links", len(plan.Created(importer.OpAddLink))),
		zap.Int("joints", len(plan.Created(importer.OpAddJoint))))
	return nil
}

type dumpAction struct {
	// out replaces output files when set
	out io.Writer
}

func (dumpAction) name() string { return "dump" }

func (a dumpAction) run(ctx context.Context, d *document, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)
	data := []byte(d.root.String())

	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("dump/%s%s", filepath.ToSlash(d.src), dumpExt), data)
	}
	if a.out != nil {
		_, err := fmt.Fprintf(a.out, "# %s\n%s", d.src, data)
		return err
	}

	outputName := buildOutputPath(d, dst, dumpExt, env)
	if err := prepareOutput(outputName, env, log); err != nil {
		return err
	}
	if err := os.WriteFile(outputName, data, 0644); err != nil {
		return fmt.Errorf("unable to write dump: %w", err)
	}
	log.Info("Dump written", zap.String("to", outputName))
	return nil
}

type importAction struct{}

func (importAction) name() string { return "import" }

func (importAction) run(ctx context.Context, d *document, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	plan, err := instantiate(ctx, d, log)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := plan.Encode(&buf); err != nil {
		return err
	}

	outputName := buildOutputPath(d, dst, planExt, env)
	if err := prepareOutput(outputName, env, log); err != nil {
		return err
	}
	if err := os.WriteFile(outputName, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write plan: %w", err)
	}

	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("plan-%s%s", plan.ID, planExt), outputName)
	}
	log.Info("Plan written", zap.String("to", outputName), zap.Stringer("id", plan.ID), zap.Int("commands", len(plan.Commands)))
	return nil
}

func instantiate(ctx context.Context, d *document, log *zap.Logger) (*importer.Plan, error) {
	env := state.EnvFromContext(ctx)

	plan, err := importer.NewPlan(d.src, d.root.Version)
	if err != nil {
		return nil, err
	}
	im := importer.New(env.Cfg.Import, d.res, log, env.ParseOptions(log)...)
	if err := im.Import(ctx, d.root, plan); err != nil {
		return nil, fmt.Errorf("unable to import %s: %w", d.src, err)
	}
	return plan, nil
}

// prepareOutput makes sure outputName could be written.
func prepareOutput(outputName string, env *state.LocalEnv, log *zap.Logger) error {
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		return os.Remove(outputName)
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}
