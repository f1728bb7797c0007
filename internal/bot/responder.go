package bot

import (
	"context"
	"fmt"

	"github.com/sehatsahara/sahara/internal/dispatch"
	"github.com/sehatsahara/sahara/internal/gateway"
)

// Responder turns one user message into a chatbot response.
type Responder interface {
	Respond(ctx context.Context, userID, text string) (dispatch.ChatResponse, error)
}

// Caller is the subset of the API gateway the remote responder needs.
type Caller interface {
	Call(ctx context.Context, endpoint string, payload any) gateway.Result
}

// Remote forwards messages to an external chatbot over the API gateway.
type Remote struct {
	caller Caller
	url    string
}

func NewRemote(c Caller, url string) *Remote {
	return &Remote{caller: c, url: url}
}

func (r *Remote) Respond(ctx context.Context, userID, text string) (dispatch.ChatResponse, error) {
	res := r.caller.Call(ctx, r.url, gateway.ChatRequest{Message: text, UserID: userID})
	if res.Err != nil {
		return dispatch.ChatResponse{}, fmt.Errorf("calling chatbot: %w", res.Err)
	}
	if res.Status >= 400 {
		return dispatch.ChatResponse{}, fmt.Errorf("chatbot returned status %d", res.Status)
	}

	var resp dispatch.ChatResponse
	if err := res.Decode(&resp); err != nil {
		return dispatch.ChatResponse{}, err
	}
	return resp, nil
}
