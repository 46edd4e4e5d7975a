package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/report"
	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/prompt"
	"bikeshare/reporters/factory"
)

const noTripsMessage = "No trips match the selected filters."

// Explorer runs the interactive session: ask for filters, load the data, show the
// reports and ask the user whether to start again
type Explorer struct {
	prompter  *prompt.Prompter
	loader    *loader.Loader
	reporters []factory.Reporter
	output    io.Writer
}

func NewExplorer(explorerConfig *config.ExplorerConfig, input io.Reader, output io.Writer) (*Explorer, error) {
	reporters, err := factory.NewReporters(explorerConfig.Reporters)
	if err != nil {
		return nil, err
	}

	return &Explorer{
		prompter:  prompt.NewPrompter(input, output),
		loader:    loader.NewLoader(explorerConfig),
		reporters: reporters,
		output:    output,
	}, nil
}

func (e *Explorer) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: explorer][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[component: explorer][method: %s][status: OK] %s", method, message)
}

// Run repeats the session until the user answers anything but yes to the restart question
// or the input ends. Errors loading the data finish the session.
func (e *Explorer) Run() error {
	iteration := 0
	for {
		iteration += 1
		log.Debug(e.getLogMessage("Run", fmt.Sprintf("starting iteration %v", iteration), nil))

		err := e.explore()
		if errors.Is(err, prompt.ErrInputClosed) {
			log.Info(e.getLogMessage("Run", "input closed, bye!", nil))
			return nil
		}
		if err != nil {
			log.Error(e.getLogMessage("Run", "error exploring data", err))
			return err
		}

		restart, err := e.prompter.AskRestart()
		if err != nil && !errors.Is(err, prompt.ErrInputClosed) {
			return err
		}

		if !restart {
			log.Debug(e.getLogMessage("Run", fmt.Sprintf("finished after %v iterations", iteration), nil))
			return nil
		}
	}
}

// explore runs one iteration: filters, load and reports
func (e *Explorer) explore() error {
	selection, err := e.prompter.GetFilters()
	if err != nil {
		return err
	}

	startTime := time.Now()
	dataset, err := e.loader.LoadData(selection)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(e.output, "Loaded %v trips (%s)\n", dataset.Len(), selection)
	_, _ = fmt.Fprintf(e.output, "\nThis took %s.\n%s\n", time.Since(startTime), report.Separator)

	if dataset.IsEmpty() {
		_, _ = fmt.Fprintln(e.output, noTripsMessage)
		return nil
	}

	for _, reporter := range e.reporters {
		rep, err := reporter.GenerateReport(dataset)
		if err != nil {
			return fmt.Errorf("error generating %s report: %w", reporter.GetType(), err)
		}
		_, _ = fmt.Fprint(e.output, rep.String())
	}

	return nil
}
