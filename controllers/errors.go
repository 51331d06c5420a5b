package controllers

import "errors"

var (
	ErrNoPermission = errors.New("you do not have permission to perform this action")
	ErrEmptyCart    = errors.New("your cart is empty, please add items before checking out")
)
