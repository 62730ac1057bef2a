package handler

import (
	"github.com/sirupsen/logrus"

	"urlintake/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
