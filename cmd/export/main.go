// Command export renders a stored script from the command line: plain text
// to a file or the system clipboard, or the survey-import and PDF formats
// to files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"scriptstudio/config"
	"scriptstudio/db"
	"scriptstudio/export"

	"github.com/atotto/clipboard"
)

func main() {
	configPath := flag.String("config", "./config/config.yml", "path to the config file")
	scriptID := flag.String("id", "", "script id to export")
	format := flag.String("format", "text", "export format: text, survey or pdf")
	out := flag.String("out", "", "output file (default: stdout for text formats)")
	toClipboard := flag.Bool("clipboard", false, "place plain-text output on the system clipboard")
	flag.Parse()

	if *scriptID == "" {
		log.Fatal("Missing required -id flag")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	script, err := db.GetScript(context.Background(), *scriptID)
	if err != nil {
		log.Fatalf("Failed to fetch script: %v", err)
	}

	switch *format {
	case "text":
		text := export.PlainText(script)
		if *toClipboard {
			if err := clipboard.WriteAll(text); err != nil {
				log.Fatalf("Failed to write clipboard: %v", err)
			}
			log.Println("Script copied to clipboard")
			return
		}
		writeOut(*out, []byte(text))
	case "survey":
		if !script.IsQuestionnaire {
			log.Fatal("Survey export is only available for questionnaire scripts")
		}
		writeOut(*out, []byte(export.SurveyImport(script)))
	case "pdf":
		if *out == "" {
			log.Fatal("PDF export requires -out")
		}
		data, err := export.PDF(script)
		if err != nil {
			log.Fatalf("Failed to render PDF: %v", err)
		}
		writeOut(*out, data)
	default:
		log.Fatalf("Unknown format %q", *format)
	}
}

func writeOut(path string, data []byte) {
	if path == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	log.Printf("Wrote %s", path)
}
