package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/glide/internal/config"
	"github.com/olivier-w/glide/internal/doc"
	"github.com/olivier-w/glide/internal/ui"
)

func main() {
	var path string

	if len(os.Args) < 2 {
		browser := ui.NewBrowser()
		if browser.HasError() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", browser.Error())
			os.Exit(1)
		}
		p := tea.NewProgram(browser, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		bm, ok := finalModel.(ui.BrowserModel)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unexpected model type from browser\n")
			os.Exit(1)
		}
		result := bm.Result()
		if result.Cancelled {
			os.Exit(0)
		}
		path = result.Path
	} else {
		path = os.Args[1]

		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if info.IsDir() {
			fmt.Fprintf(os.Stderr, "Error: %s is a directory\n", path)
			os.Exit(1)
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !doc.IsSupportedExt(ext) {
			fmt.Fprintf(os.Stderr, "Error: unsupported format %s (supported: %s)\n", ext, doc.SupportedExtsList())
			os.Exit(1)
		}
	}

	cfgPath, err := config.Path()
	if err != nil {
		cfgPath = ""
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	d, err := doc.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := ui.NewPager(d, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
