package events

import (
	"github.com/lcstaffing/jobboard/internal/domain/models"
)

var ApplicationCreatedTopic = "ApplicationCreatedEvent"

type ApplicationCreated struct {
	Application models.Application
}
