package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/explorer/config"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func main() {
	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%s", err)
	}

	if err := InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	explorer, err := NewExplorer(explorerConfig, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("[caller: main][status: ERROR] error creating explorer: %s", err)
	}

	if err := explorer.Run(); err != nil {
		log.Errorf("[caller: main][status: ERROR] %s", err)
		os.Exit(1)
	}

	log.Debug("[caller: main][status: OK] Finish main.go")
}
