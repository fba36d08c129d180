package main

import (
	"flag"
	"log"
	"os"

	"github.com/mogaika/studio_clipboard/config"
	"github.com/mogaika/studio_clipboard/editor/clipboard"
	"github.com/mogaika/studio_clipboard/editor/clipboard/system"
	"github.com/mogaika/studio_clipboard/editor/dialog"
	"github.com/mogaika/studio_clipboard/editor/project"
	"github.com/mogaika/studio_clipboard/status"
	"github.com/mogaika/studio_clipboard/web"
)

func main() {
	var settingsPath, addr, projectPath, backend, replace string
	var verbose, demo bool
	flag.StringVar(&settingsPath, "config", "", "Path to yaml settings file")
	flag.StringVar(&addr, "i", "", "Address of server (default :8000)")
	flag.StringVar(&projectPath, "project", "", "Path to project file (.yaml, or .yaml.zst for compressed)")
	flag.StringVar(&backend, "clipboard", "", "Clipboard backend: 'system' or 'memory'")
	flag.StringVar(&replace, "replace", "", "Custom event conflicts: 'ask', 'always' or 'never' replace")
	flag.BoolVar(&verbose, "v", false, "Dump clipboard payloads to log")
	flag.BoolVar(&demo, "demo", false, "Create sample project when project file does not exist")
	flag.Parse()

	settings := config.Default()
	if settingsPath != "" {
		var err error
		if settings, err = config.Load(settingsPath); err != nil {
			log.Fatal(err)
		}
	}
	if addr != "" {
		settings.Listen = addr
	}
	if projectPath != "" {
		settings.Project = projectPath
	}
	if backend != "" {
		settings.ClipboardBackend = backend
	}
	if replace != "" {
		settings.ReplacePolicy = replace
	}
	if verbose {
		settings.Verbose = true
	}
	config.Set(settings)

	if settings.Project == "" {
		flag.PrintDefaults()
		return
	}

	policy, err := dialog.ParsePolicy(settings.ReplacePolicy)
	if err != nil {
		log.Fatal(err)
	}

	var p *project.Project
	if _, err := os.Stat(settings.Project); os.IsNotExist(err) && demo {
		p = project.NewSample(settings.Project)
		log.Printf("[project] Created sample project %q", settings.Project)
	} else if p, err = project.OpenProject(settings.Project); err != nil {
		log.Fatal(err)
	}

	cb, err := system.Open(settings.ClipboardBackend)
	if err != nil {
		log.Fatal(err)
	}

	hub := status.NewHub()
	m := clipboard.NewMiddleware(p, cb, dialog.ForPolicy(policy), hub)

	if err := web.StartServer(settings.Listen, web.NewServer(p, m, hub)); err != nil {
		log.Fatal(err)
	}
}
