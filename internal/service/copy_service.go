package service

import (
	"context"

	"github.com/ATenderholt/rainbow-copier/internal/domain"
	"github.com/ATenderholt/rainbow-copier/internal/storage"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Config interface {
	Destination() string
	AbortOnError() bool
	KeyFilter() domain.Filter
}

// CopyService copies every object named in a notification batch into the
// configured destination bucket under the same key.
type CopyService struct {
	cfg    Config
	copier storage.ObjectCopier
	logger *zap.SugaredLogger
}

func NewCopyService(config Config, copier storage.ObjectCopier) *CopyService {
	return &CopyService{
		cfg:    config,
		copier: copier,
		logger: logger,
	}
}

func (service *CopyService) WithLogger(l *zap.SugaredLogger) *CopyService {
	service.logger = l
	return service
}

// Handle processes records sequentially. By default the first failed copy is
// returned immediately and later records are not attempted; when the config
// disables AbortOnError all records are attempted and failures are combined.
func (service *CopyService) Handle(ctx context.Context, event domain.Event) error {
	destination := service.cfg.Destination()
	filter := service.cfg.KeyFilter()

	service.logger.Debugf("Received %d records: %v", len(event.Records), event.Keys())

	var errs error
	for _, record := range event.Records {
		bucket := record.SourceBucket()
		key := record.ObjectKey()

		if !filter.Accepts(key) {
			service.logger.Debugf("Skipping %s, key does not match filter", record.NotificationEvent())
			continue
		}

		err := service.copier.CopyObject(ctx, bucket, key, destination, key)
		if err != nil {
			err := CopyError{
				bucket:      bucket,
				key:         key,
				destination: destination,
				base:        err,
			}
			service.logger.Errorf("Error: %s", describe(err))

			if service.cfg.AbortOnError() {
				return err
			}

			errs = multierr.Append(errs, err)
			continue
		}

		service.logger.Infof("Successfully copied %s to %s", key, destination)
	}

	return errs
}
