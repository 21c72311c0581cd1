package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// fetchTemplates retrieves both blank agreement templates concurrently. A
// missing or unreadable template is fatal: a contract cannot issue with half
// its documents.
func (f *ContractIntakeFunction) fetchTemplates(ctx context.Context) (release, training []byte, err error) {
	eg, gctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		data, err := f.store.Fetch(gctx, f.config.ReleaseTemplateObject)
		if err != nil {
			return fmt.Errorf("release of liability template: %w", err)
		}
		release = data
		return nil
	})
	eg.Go(func() error {
		data, err := f.store.Fetch(gctx, f.config.TrainingTemplateObject)
		if err != nil {
			return fmt.Errorf("training agreement template: %w", err)
		}
		training = data
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return release, training, nil
}
