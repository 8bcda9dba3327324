package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrDuplicateName   = errors.New("project name already exists")
	ErrEmptyName       = errors.New("project name is empty")
)
