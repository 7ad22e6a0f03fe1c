package util

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
)

// Slugify converts text to a lowercase URL-safe slug.
func Slugify(text string) string {
	return slug.Make(text)
}

// UniqueSlug appends -1, -2, ... to base until exists reports the slug is free.
func UniqueSlug(ctx context.Context, base string, exists func(context.Context, string) (bool, error)) (string, error) {
	if base == "" {
		base = "chef"
	}
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
