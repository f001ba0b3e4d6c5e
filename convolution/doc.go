// Package convolution provides a 2-D convolution engine for single-channel
// rasters and the gradient-magnitude mapper used for edge detection.
//
// Convolution is zero padded: kernel taps that fall outside the raster
// contribute nothing. Kernels are square with an odd size and are applied
// without normalization, so the weights carry any scale the caller wants.
//
// Typical edge detection:
//
//	gx, _ := convolution.Convolve(gray, convolution.SobelX)
//	gy, _ := convolution.Convolve(gray, convolution.SobelY)
//	edges, _ := convolution.GradientToIntensity(gx, gy, gray.Width(), gray.Height(), 1.0)
package convolution
