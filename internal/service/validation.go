package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/sitelog/sitelog-api/internal/models"
)

// NewValidator returns a validator with the domain enum rules
// registered. Services fall back to this when no shared instance is
// injected.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("projectstatus", func(fl validator.FieldLevel) bool {
		switch models.ProjectStatus(fl.Field().String()) {
		case models.ProjectStatusActive, models.ProjectStatusReview, models.ProjectStatusComplete:
			return true
		default:
			return false
		}
	})

	v.RegisterValidation("projecttype", func(fl validator.FieldLevel) bool {
		switch models.ProjectType(fl.Field().String()) {
		case models.ProjectTypeBuilding, models.ProjectTypeInfrastructure, models.ProjectTypeResidential:
			return true
		default:
			return false
		}
	})

	v.RegisterValidation("doctype", func(fl validator.FieldLevel) bool {
		switch models.DocumentType(fl.Field().String()) {
		case models.DocumentTypeDrawing, models.DocumentTypeSpecification, models.DocumentTypeReport,
			models.DocumentTypePermit, models.DocumentTypeInvoice, models.DocumentTypeOther:
			return true
		default:
			return false
		}
	})

	v.RegisterValidation("materialcategory", func(fl validator.FieldLevel) bool {
		switch models.MaterialCategory(fl.Field().String()) {
		case models.MaterialCategoryConcrete, models.MaterialCategorySoil, models.MaterialCategoryAsphalt:
			return true
		default:
			return false
		}
	})

	v.RegisterValidation("resultstatus", func(fl validator.FieldLevel) bool {
		switch models.ResultStatus(fl.Field().String()) {
		case models.ResultStatusPass, models.ResultStatusFail:
			return true
		default:
			return false
		}
	})

	v.RegisterValidation("remindertype", func(fl validator.FieldLevel) bool {
		switch models.ReminderType(fl.Field().String()) {
		case models.ReminderType599, models.ReminderTypeSW3P, models.ReminderTypeMaterialTest:
			return true
		default:
			return false
		}
	})

	v.RegisterValidation("eventtype", func(fl validator.FieldLevel) bool {
		switch models.EventType(fl.Field().String()) {
		case models.EventTypeInspection, models.EventTypeVisit, models.EventTypeDeadline:
			return true
		default:
			return false
		}
	})

	return v
}
