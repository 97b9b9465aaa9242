package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"page-assist/internal/domain"
	"page-assist/internal/relay"
	"page-assist/internal/service"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// ErrActionFailed is returned after a relay error has been printed.
var ErrActionFailed = errors.New("action failed")

type sendOptions struct {
	data     string
	pagePath string
	pretty   bool
	wrap     int
}

func newSendCommand(root *rootOptions) *cobra.Command {
	opts := &sendOptions{}

	cmd := &cobra.Command{
		Use:   "send <action>",
		Short: "Run one action through the relay and print the response",
		Example: `  pageassist send summarize --page page.json
  pageassist send ask --page page.json --data '{"question":"What is the main claim?"}' --pretty
  pageassist send checkQuizAnswer --data '{"questionIndex":0,"selectedOptionIndex":2}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := domain.Action(args[0])

			data, err := buildPayload(opts.data, opts.pagePath)
			if err != nil {
				return err
			}

			generator, err := generatorFactory(root.cfg)
			if err != nil {
				return fmt.Errorf("failed to create generator: %w", err)
			}
			dispatcher := relay.NewDispatcher(
				service.NewRelayService(generator, root.cfg.Relay.MaxContentChars),
				service.NewSessionStore(),
			)
			resp := dispatcher.Do(cmd.Context(), relay.Request{Action: action, Data: data})

			out := cmd.OutOrStdout()
			if text, ok := resp.Result.(string); ok && opts.pretty && action.FreeText() {
				styled, err := renderTerminal(text, opts.wrap)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, styled)
				return err
			}

			encoded, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out, string(encoded)); err != nil {
				return err
			}
			if resp.Failed() {
				return ErrActionFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "action payload as a JSON object")
	cmd.Flags().StringVarP(&opts.pagePath, "page", "p", "", "page content JSON file ({title, metaDescription, bodyText, url})")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "render free-text results for the terminal")
	cmd.Flags().IntVar(&opts.wrap, "wrap", 100, "word wrap width for --pretty")
	return cmd
}

// buildPayload merges extracted page content into the --data object. Fields
// already present in --data win.
func buildPayload(raw, pagePath string) (json.RawMessage, error) {
	payload := map[string]interface{}{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return nil, fmt.Errorf("--data must be a JSON object: %w", err)
		}
	}

	if pagePath != "" {
		src, err := os.ReadFile(pagePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read page file: %w", err)
		}
		var page domain.PageContent
		if err := json.Unmarshal(src, &page); err != nil {
			return nil, fmt.Errorf("invalid page file %s: %w", pagePath, err)
		}
		setDefault(payload, "title", page.Title)
		setDefault(payload, "content", page.BodyText)
		setDefault(payload, "url", page.URL)
	}

	return json.Marshal(payload)
}

func setDefault(m map[string]interface{}, key, value string) {
	if _, ok := m[key]; !ok && value != "" {
		m[key] = value
	}
}

func renderTerminal(markdown string, wrap int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	return r.Render(markdown)
}
