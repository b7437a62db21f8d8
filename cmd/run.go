package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/app"
	"github.com/abhisek/gradecast/internal/config"
	"github.com/abhisek/gradecast/internal/store"
	"github.com/abhisek/gradecast/internal/subject"
)

// runApp loads config, opens the stores, builds the model, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	model, cleanup, err := buildModel(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := app.Run(app.Options{Model: model}); err != nil {
		return err
	}

	// Flush confirmed parameters on the way out.
	if err := model.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save parameters: %v\n", err)
	}
	return nil
}

// buildModel wires the param file and event log into a model. The
// returned cleanup closes the history store.
func buildModel(cfg *config.Config) (*subject.Model, func(), error) {
	st, err := store.Open(cfg.HistoryDB)
	if err != nil {
		return nil, nil, fmt.Errorf("open history store: %w", err)
	}

	events, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("open event repo: %w", err)
	}

	model := subject.NewModel(subject.Options{
		Params:       store.NewParamFile(cfg.ParamsFile),
		History:      events,
		DefaultValue: cfg.DefaultValue,
		Weights:      cfg.ModelWeights(),
	})

	return model, func() { st.Close() }, nil
}
