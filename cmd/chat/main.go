package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/trtech123/tos/internal/assistant"
	"github.com/trtech123/tos/internal/client"
	"github.com/trtech123/tos/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var serverURL string
	var audioFile string
	var sessionID string
	var widget bool

	flagSet := pflag.NewFlagSet("tos-chat", pflag.ContinueOnError)
	flagSet.StringVar(&serverURL, "server", "http://localhost:3000", "base URL of the tos API")
	flagSet.StringVar(&audioFile, "audio-file", "", "recorded clip played back as the microphone (ctrl+r)")
	flagSet.StringVar(&sessionID, "session", "", "booking session id (default: a new one)")
	flagSet.BoolVar(&widget, "widget", false, "start as the floating widget: closed, with a greeting")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	api, err := client.New(client.Config{BaseURL: serverURL, SessionID: sessionID})
	if err != nil {
		return err
	}

	var opts []assistant.ConversationOption
	if widget {
		opts = append(opts, assistant.WithGreeting())
	}
	conv := assistant.NewConversation(api, opts...)

	navigator := tui.NewCheckoutNavigator(api)
	panel := assistant.NewPanel(navigator, widget)

	var recorderOpts []assistant.RecorderOption
	if audioFile != "" {
		contentType := mime.TypeByExtension(filepath.Ext(audioFile))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		recorderOpts = append(recorderOpts, assistant.WithClipFormat(filepath.Base(audioFile), contentType))
	}
	recorder := assistant.NewRecorder(assistant.FileMicrophone{Path: audioFile}, api, conv, recorderOpts...)

	model := tui.New(conv, panel, recorder, navigator)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `tos-chat: terminal chat with the טוס תיירות flight assistant.

Usage:
  tos-chat [flags]

Examples:
  # Chat against a local server
  tos-chat

  # Use a recorded clip as the microphone and start as the widget
  tos-chat --audio-file question.webm --widget

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
