package service

import (
	"github.com/ATenderholt/rainbow-copier/internal/logging"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func init() {
	logger = logging.NewLogger().Named("service")
}
