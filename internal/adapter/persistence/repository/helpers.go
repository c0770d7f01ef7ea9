package repository

import (
	"errors"
	"os"

	"github.com/aws/smithy-go"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// isConditionalCheckFailed reports whether a DynamoDB write was rejected by
// its ConditionExpression.
func isConditionalCheckFailed(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException"
}
