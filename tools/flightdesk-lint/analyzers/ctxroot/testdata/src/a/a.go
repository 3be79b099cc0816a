package a

import "context"

func fetch(ctx context.Context) error {
	return ctx.Err()
}

func bad() error {
	return fetch(context.Background()) // want "context.Background called outside package main"
}

func badTODO() error {
	return fetch(context.TODO()) // want "context.TODO called outside package main"
}

func good(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return fetch(ctx)
}
