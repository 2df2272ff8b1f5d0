package question

import "context"

type ListOpts struct {
	Level  string
	Topic  string
	Limit  int
	Offset int
}

type Store interface {
	Put(ctx context.Context, q Question) error
	Get(ctx context.Context, id int) (Question, error)
	List(ctx context.Context, opts ListOpts) ([]Question, error)
	Random(ctx context.Context) (Question, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int) error
}
