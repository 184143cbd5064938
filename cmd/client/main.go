package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nextlevelsbs/sopbuilder/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8000", "server url")
	tokenFlag := flag.String("token", "", "server token")

	templateFlag := flag.String("template", "", "template id")
	companyFlag := flag.String("company", "", "company name")
	locationFlag := flag.String("location", "", "company location")
	providerFlag := flag.String("provider", "", "llm provider")

	outputFlag := flag.String("output", "", "write the generated SOP as PDF to this file")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	if *templateFlag == "" {
		listTemplates(ctx, c)
		return
	}

	if *companyFlag == "" {
		fail("company name is required")
	}

	generate(ctx, c, *templateFlag, *companyFlag, *locationFlag, *providerFlag, *outputFlag)
}

func listTemplates(ctx context.Context, c *client.Client) {
	templates, err := c.Templates.List(ctx, "")

	if err != nil {
		fail(err.Error())
	}

	for _, t := range templates {
		fmt.Printf("%-28s %-12s %s\n", t.ID, t.Industry, t.Title)
	}
}

func generate(ctx context.Context, c *client.Client, template, company, location, provider, output string) {
	result, err := c.Generations.Submit(ctx, client.GenerationRequest{
		TemplateID: template,

		CompanyInfo: client.CompanyInfo{
			Name:     company,
			Location: location,
		},

		Provider: provider,
	})

	if err != nil {
		fail(err.Error())
	}

	fmt.Println("generation", result.GenerationID)

	generation, err := waitWithProgress(ctx, c, result.GenerationID)

	if err != nil {
		fail(err.Error())
	}

	fmt.Println("completed in status", generation.Status)

	if output == "" || generation.Result == nil {
		return
	}

	doc, err := c.Documents.Create(ctx, client.PDFGenerationRequest{
		Title:      company + " SOP",
		TemplateID: template,

		TemplateData: generation.Result.TemplateData,
	})

	if err != nil {
		fail(err.Error())
	}

	data, err := c.Documents.Download(ctx, doc.DocumentID)

	if err != nil {
		fail(err.Error())
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		fail(err.Error())
	}

	fmt.Println("wrote", output)
}

func waitWithProgress(ctx context.Context, c *client.Client, id string) (*client.Generation, error) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	var lastStep string

	for {
		status, err := c.Generations.Status(ctx, id)

		if err != nil {
			return nil, err
		}

		if status.CurrentStep != lastStep {
			lastStep = status.CurrentStep
			fmt.Printf("%3d%% %s\n", status.Progress, status.CurrentStep)
		}

		if status.Status.Terminal() {
			if status.Error != "" {
				return status, fmt.Errorf("generation %s: %s", status.Status, status.Error)
			}

			return status, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case <-ticker.C:
		}
	}
}

func fail(text string) {
	fmt.Fprintln(os.Stderr, "error:", strings.TrimSpace(text))
	os.Exit(1)
}
