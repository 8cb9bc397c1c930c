package main

import (
	"fmt"
	"log"

	"beginner-gl/Beginner/libgl"
	"beginner-gl/Beginner/libio"
	"beginner-gl/Beginner/libraster"
)

func captureFrame(api libgl.Api, width, height int, args arguments) error {
	pix := api.ReadPixels(0, 0, int32(width), int32(height))
	frame, err := libio.FromFramebuffer(pix, width, height)
	if err != nil {
		return fmt.Errorf("could not capture frame: %w", err)
	}
	if err := libio.WriteImageFile(args.CapturePath, frame); err != nil {
		return err
	}
	if args.ReferencePath == "" {
		return nil
	}

	reference := libraster.Render(TriangleVertices[:], width, height, libraster.ClearColor)
	if err := libio.WriteImageFile(args.ReferencePath, reference); err != nil {
		return err
	}
	n, err := libraster.Diff(frame, reference)
	if err != nil {
		return err
	}
	log.Printf("captured frame differs from the reference in %d of %d pixels\n", n, width*height)
	return nil
}

func writeReference(filename string, width, height int) error {
	reference := libraster.Render(TriangleVertices[:], width, height, libraster.ClearColor)
	return libio.WriteImageFile(filename, reference)
}
