package service

import (
	"context"

	"koerplan/internal/domain/entity"
)

// CaptureRequest describes one map image to store
type CaptureRequest struct {
	Dir    string             // directory the image is stored in
	Name   string             // file name, e.g. 2026-01-31_kørsel_ud.jpg
	Routes []entity.RouteData // legs drawn on the map
	Dashed bool               // deduction legs are drawn dashed
}

// MapCapturer renders and stores route map images
type MapCapturer interface {
	Capture(ctx context.Context, req CaptureRequest) error
}
