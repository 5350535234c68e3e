package service

import (
	"errors"

	"github.com/yunqiwei/licheng/internal/repository"
)

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
