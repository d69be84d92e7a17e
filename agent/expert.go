package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Expert represents a chat with a business expert.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send to extract the text answer.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content, nil
}
