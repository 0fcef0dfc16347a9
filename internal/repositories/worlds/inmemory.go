package worlds

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/adventure-engine/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*WorldData
}

// NewInMemory creates a new in-memory repository. A nil clock uses real time.
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]*WorldData),
	}
}

// Put stores a world
func (r *InMemoryRepository) Put(_ context.Context, input *PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	data := copyData(&WorldData{
		ID:        input.ID,
		Title:     input.Title,
		Content:   input.Content,
		UpdatedAt: r.clock.Now().Unix(),
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.ID] = data

	return &PutOutput{Data: copyData(data)}, nil
}

// Get retrieves a world by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errInputRequired
	}
	if input.ID == "" {
		return nil, errIDRequired
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.store[input.ID]
	if !exists {
		return nil, errNotFound(input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Data: copyData(data)}, nil
}

// List returns every world ordered by ID
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errInputRequired
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	worlds := make([]*WorldData, 0, len(r.store))
	for _, data := range r.store {
		worlds = append(worlds, copyData(data))
	}
	sort.Slice(worlds, func(i, j int) bool { return worlds[i].ID < worlds[j].ID })

	return &ListOutput{Worlds: worlds}, nil
}

// Delete removes a world
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errInputRequired
	}
	if input.ID == "" {
		return nil, errIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errNotFound(input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}
