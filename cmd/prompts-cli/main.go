package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/AlecAivazis/survey/v2"

	prompts "github.com/promptpack/go-prompts"
)

func main() {
	name := flag.String("template", "", "template name to load")
	contextJSON := flag.String("context", "", "render context as a JSON object")
	output := flag.String("output", "", "output file (stdout if empty)")
	info := flag.Bool("info", false, "print template info instead of rendering")
	interactive := flag.Bool("interactive", true, "prompt for variables missing from the context")
	verbose := flag.Bool("verbose", false, "log store and cache activity")
	flag.Parse()

	if *name == "" {
		log.Fatal("missing required -template flag")
	}

	var options []prompts.Option
	if *verbose {
		options = append(options, prompts.WithLogger(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	manager, err := prompts.New(options...)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	tpl, err := manager.LoadTemplate(context.Background(), *name)
	if err != nil {
		log.Fatalf("Failed to load template %q: %v", *name, err)
	}

	if *info {
		encoded, err := json.MarshalIndent(manager.TemplateInfo(tpl), "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode template info: %v", err)
		}
		fmt.Println(string(encoded))
		return
	}

	data := map[string]any{}
	if *contextJSON != "" {
		if err := json.Unmarshal([]byte(*contextJSON), &data); err != nil {
			log.Fatalf("Invalid -context JSON: %v", err)
		}
	}

	if *interactive {
		if err := askMissing(tpl.Variables(), data); err != nil {
			log.Fatalf("Failed to read variable: %v", err)
		}
	}

	rendered, err := manager.Render(tpl, data)
	if err != nil {
		log.Fatalf("Failed to render template: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Rendered template written to %s\n", *output)
	} else {
		fmt.Println(rendered)
	}
}

// askMissing prompts for every referenced variable the context does not
// already carry.
func askMissing(variables []string, data map[string]any) error {
	for _, variable := range variables {
		if _, ok := data[variable]; ok {
			continue
		}
		var answer string
		prompt := &survey.Input{Message: fmt.Sprintf("Value for %q:", variable)}
		if err := survey.AskOne(prompt, &answer); err != nil {
			return err
		}
		data[variable] = answer
	}
	return nil
}
