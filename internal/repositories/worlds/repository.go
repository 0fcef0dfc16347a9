// Package worlds stores world content documents by ID. It holds static
// content only; play state never leaves the process.
package worlds

//go:generate mockgen -destination=mock/mock_repository.go -package=worldsmock github.com/KirkDiggler/adventure-engine/internal/repositories/worlds Repository

import (
	"context"
)

// Repository defines the storage interface for world content
type Repository interface {
	// Put stores or replaces a world document
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)

	// Get retrieves a world document by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns every stored world ordered by ID
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Delete removes a world document
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// WorldData is a stored world document
type WorldData struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   []byte `json:"content"`
	UpdatedAt int64  `json:"updated_at"`
}

// PutInput defines the request for storing a world
type PutInput struct {
	ID      string
	Title   string
	Content []byte
}

// PutOutput defines the response for storing a world
type PutOutput struct {
	Data *WorldData
}

// GetInput defines the request for retrieving a world
type GetInput struct {
	ID string
}

// GetOutput defines the response for retrieving a world
type GetOutput struct {
	Data *WorldData
}

// ListInput defines the request for listing worlds
type ListInput struct{}

// ListOutput defines the response for listing worlds
type ListOutput struct {
	Worlds []*WorldData
}

// DeleteInput defines the request for deleting a world
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the response for deleting a world
type DeleteOutput struct{}

func validatePut(input *PutInput) error {
	if input == nil {
		return errInputRequired
	}
	if input.ID == "" {
		return errIDRequired
	}
	if len(input.Content) == 0 {
		return errContentRequired
	}
	return nil
}

func copyData(data *WorldData) *WorldData {
	content := make([]byte, len(data.Content))
	copy(content, data.Content)
	return &WorldData{
		ID:        data.ID,
		Title:     data.Title,
		Content:   content,
		UpdatedAt: data.UpdatedAt,
	}
}
