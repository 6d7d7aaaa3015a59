// SPDX-License-Identifier: EPL-2.0

// Package imagesink persists flat RGB pixel buffers as image files.
//
// The format is chosen from the file extension: PNG and JPEG come from the
// standard library, BMP and TIFF from golang.org/x/image.
//
//	err := imagesink.Save("out.png", img.Width, img.Height, img.Pix)
//	if errors.Is(err, imagesink.ErrDimensionMismatch) {
//	    // len(pix) != width*height*3
//	}
package imagesink
