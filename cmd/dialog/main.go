// Command dialog is an interactive console for a Watson Assistant
// workspace. Each line typed becomes a message turn; the dialog
// context is carried between turns.
//
// Usage:
//
//	ASSISTANT_APIKEY=... ASSISTANT_URL=... go run ./cmd/dialog/ -workspace <id>
//
// Flags:
//
//	-workspace  Workspace ID (required)
//	-version    API version date (default 2018-02-16)
//	-intents    Print recognized intents with each reply
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cognitivekit/go-watson/internal/log"
	"github.com/cognitivekit/go-watson/pkg/assistantv1"
	"github.com/cognitivekit/go-watson/pkg/watson"
)

var (
	workspaceID = flag.String("workspace", "", "Workspace ID (required)")
	version     = flag.String("version", "2018-02-16", "API version date")
	showIntents = flag.Bool("intents", false, "Print recognized intents with each reply")
)

func main() {
	flag.Parse()
	log.Init(os.Getenv("WATSON_LOG_LEVEL"))

	if *workspaceID == "" {
		fmt.Fprintln(os.Stderr, "-workspace is required")
		os.Exit(1)
	}

	assistant, err := assistantv1.NewFromEnvironment(watson.WithVersion(*version))
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating client: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// An empty first message triggers the workspace welcome node.
	dialogContext := assistantv1.Context{}
	reply, err := assistant.Message(ctx, &assistantv1.MessageOptions{
		WorkspaceID: *workspaceID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "message failed: %v\n", err)
		os.Exit(1)
	}
	printReply(reply)
	dialogContext = reply.Context

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text == "quit" || text == "exit" {
			break
		}

		reply, err := assistant.Message(ctx, &assistantv1.MessageOptions{
			WorkspaceID: *workspaceID,
			Input:       &assistantv1.MessageInput{Text: text},
			Context:     dialogContext,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "message failed: %v\n", err)
			if !watson.IsRetryable(err) {
				os.Exit(1)
			}
			fmt.Print("> ")
			continue
		}
		dialogContext = reply.Context
		printReply(reply)
		fmt.Print("> ")
	}
}

func printReply(reply *assistantv1.MessageResponse) {
	if reply.Output != nil {
		for _, line := range reply.Output.Text {
			fmt.Println(line)
		}
	}
	if *showIntents {
		for _, intent := range reply.Intents {
			fmt.Printf("  [#%s %.2f]\n", intent.Intent, intent.Confidence)
		}
	}
}
