package utils

import (
	"assetledger/models"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// ValidateStruct runs the struct tag rules on a request model.
func ValidateStruct(req interface{}) error {
	return validate.Struct(req)
}

func IsAssetStatusValid(status models.AssetStatus) bool {
	for _, s := range models.AssetStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// AssetValidityCheck covers the add-asset rules struct tags cannot express.
func AssetValidityCheck(req models.AddAssetReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return errors.New("category is required")
	}
	if req.Status != "" && !IsAssetStatusValid(req.Status) {
		return errors.Errorf("invalid asset status %q", req.Status)
	}
	if req.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	return nil
}
