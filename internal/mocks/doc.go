// Package mocks holds gomock doubles for the internal interfaces.
// They follow the layout mockgen produces for the go:generate directive next to each interface.
package mocks
