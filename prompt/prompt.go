package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const (
	greeting      = "Hello! Let's explore some US bikeshare data!"
	cityPrompt    = "name of city: "
	monthPrompt   = "name of month to filter, all to apply no filter: "
	dayPrompt     = "name of day to filter, all to apply no filter: "
	restartPrompt = "\nWould you like to restart? Enter yes or no.\n"
	restartAnswer = "yes"
)

// ErrInputClosed is returned when the input ends before the user answers
var ErrInputClosed = errors.New("input closed")

// Prompter asks the user for the filters to apply to the bikeshare data
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewPrompter(input io.Reader, output io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(input),
		writer: output,
	}
}

func (p *Prompter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: prompt][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[component: prompt][method: %s][status: OK] %s", method, message)
}

// GetUserSelection asks promptText until the user enters one of allowedValues.
// The answer is lowercased and trimmed before checking it.
func (p *Prompter) GetUserSelection(promptText string, allowedValues []string) (string, error) {
	for {
		userInput, err := p.readLine(promptText)
		if err != nil {
			return "", err
		}

		if utils.ContainsString(userInput, allowedValues) {
			return userInput, nil
		}

		log.Debug(p.getLogMessage("GetUserSelection", fmt.Sprintf("invalid input %q", userInput), nil))
		_, _ = fmt.Fprintf(p.writer, "invalid input, please try one of %s\n", formatAllowedValues(allowedValues))
	}
}

// GetFilters asks the user for city, month and day, in that order
func (p *Prompter) GetFilters() (filter.Selection, error) {
	_, _ = fmt.Fprintln(p.writer, greeting)

	city, err := p.GetUserSelection(cityPrompt, filter.Cities)
	if err != nil {
		return filter.Selection{}, err
	}

	month, err := p.GetUserSelection(monthPrompt, filter.Months)
	if err != nil {
		return filter.Selection{}, err
	}

	day, err := p.GetUserSelection(dayPrompt, filter.Days)
	if err != nil {
		return filter.Selection{}, err
	}

	_, _ = fmt.Fprintln(p.writer, report.Separator)

	selection := filter.NewSelection(city, month, day)
	log.Info(p.getLogMessage("GetFilters", "selected "+selection.String(), nil))
	return selection, nil
}

// AskRestart returns true only if the user answers exactly yes, in any case.
// Surrounding whitespace is not removed, " yes" is not a restart.
func (p *Prompter) AskRestart() (bool, error) {
	line, err := p.readRawLine(restartPrompt)
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimRight(line, "\r\n"))
	return answer == restartAnswer, nil
}

// readLine writes promptText and returns the next line lowercased and trimmed
func (p *Prompter) readLine(promptText string) (string, error) {
	line, err := p.readRawLine(promptText)
	if err != nil {
		return "", err
	}
	return utils.NormalizeInput(line), nil
}

// readRawLine writes promptText and returns the next line as typed, newline included.
// A last line without newline is still returned, the following call gets ErrInputClosed.
func (p *Prompter) readRawLine(promptText string) (string, error) {
	_, _ = fmt.Fprint(p.writer, promptText)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			log.Error(p.getLogMessage("readLine", "error reading user input", err))
			return "", err
		}

		if line == "" {
			return "", ErrInputClosed
		}
	}

	return line, nil
}

func formatAllowedValues(allowedValues []string) string {
	quoted := make([]string, 0, len(allowedValues))
	for _, value := range allowedValues {
		quoted = append(quoted, fmt.Sprintf("'%s'", value))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
