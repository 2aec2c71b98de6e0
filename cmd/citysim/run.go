package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ChicagoDave/citysim/internal/pipeline"
	"github.com/ChicagoDave/citysim/pkg/analytics"
	"github.com/ChicagoDave/citysim/pkg/logger"
	"github.com/ChicagoDave/citysim/pkg/preview"
	"github.com/ChicagoDave/citysim/pkg/scene2d"
	"github.com/ChicagoDave/citysim/pkg/spec"
	"github.com/ChicagoDave/citysim/pkg/validation"
)

// loadAndValidate loads the city spec and runs schema validation.
func loadAndValidate(projectPath string) (*spec.CitySpec, *validation.Report, error) {
	citySpec, err := pipeline.Load(projectPath)
	if err != nil {
		return nil, nil, err
	}
	schemaReport := validation.ValidateSchema(citySpec)
	return citySpec, schemaReport, nil
}

// buildWorld validates the city spec and builds the world, printing the report
// when it is rejected.
func buildWorld(projectPath string) (*pipeline.World, error) {
	citySpec, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return nil, err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return nil, fmt.Errorf("spec has validation errors")
	}
	return pipeline.Build(citySpec)
}

func runValidate(projectPath string) error {
	citySpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	if report.Valid {
		w, err := pipeline.Build(citySpec)
		if err != nil {
			return err
		}
		// Schema results are already in the world report.
		report = w.Report
		report.Merge(scene2d.Validate(scene2d.Assemble(w.City, nil)))
		_, summaryReport := analytics.Summarize(w.City, nil)
		report.Merge(summaryReport)
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath string) error {
	w, err := buildWorld(projectPath)
	if err != nil {
		return err
	}

	scene := scene2d.Assemble(w.City, nil)
	w.Report.Merge(scene2d.Validate(scene))
	summary, summaryReport := analytics.Summarize(w.City, nil)
	w.Report.Merge(summaryReport)

	output := map[string]any{
		"city_id":    w.City.ID,
		"summary":    summary,
		"validation": w.Report,
		"scene":      scene,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runSimulate(projectPath string, ticks int) error {
	if ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", ticks)
	}
	w, err := buildWorld(projectPath)
	if err != nil {
		return err
	}

	events := w.Driver.StepN(ticks)
	logger.Log.WithField("events", len(events)).Info("simulation finished")

	summary, report := analytics.Summarize(w.City, w.Driver)
	w.Report.Merge(report)

	printSummary(summary, w.Spec.Simulation.TickSeconds)
	fmt.Println()
	printValidationReport(w.Report)
	return nil
}

func runPreview(projectPath, out string) error {
	w, err := buildWorld(projectPath)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating preview: %w", err)
	}
	defer f.Close()

	if err := preview.Render(w.City).WritePNG(f); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	logger.Log.WithField("path", out).Info("preview written")
	return nil
}
