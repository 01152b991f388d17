//go:build wireinject
// +build wireinject

package main

import (
	"github.com/ATenderholt/rainbow-copier/internal/http"
	"github.com/ATenderholt/rainbow-copier/internal/service"
	"github.com/ATenderholt/rainbow-copier/internal/settings"
	"github.com/ATenderholt/rainbow-copier/internal/storage"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/wire"
)

var storageSet = wire.NewSet(
	storage.NewS3Client,
	storage.NewS3Copier,
	wire.Bind(new(storage.S3API), new(*s3.Client)),
	wire.Bind(new(storage.ObjectCopier), new(*storage.S3Copier)),
)

var api = wire.NewSet(
	http.NewInvokeHandler,
	http.NewChiMux,
	wire.Bind(new(http.EventHandler), new(*service.CopyService)),
)

func InjectApp(cfg *settings.Config) (*App, error) {
	wire.Build(
		NewApp,
		service.NewCopyService,
		wire.Bind(new(service.Config), new(*settings.Config)),
		storageSet,
		api,
	)
	return nil, nil
}
