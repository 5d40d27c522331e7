package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danevairena/SocialMediaBackend/pkg/apperror"
	"github.com/go-playground/validator/v10"
)

// BindError turns a gin binding failure into an InvalidArgument error.
func BindError(err error) error {
	return apperror.InvalidArgument("%s", FormatValidationError(err))
}

func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing %s", field)
	case "gt", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("Invalid %s", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"FollowerID":  "followerId",
		"FollowingID": "followingId",
		"PostID":      "postId",
		"UserID":      "userId",
		"ReceiverID":  "receiverId",
		"SenderID":    "senderId",
		"Content":     "content",
		"Text":        "text",
		"Type":        "type",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
