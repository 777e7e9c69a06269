package life

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// fftCounter counts neighbors as a 2D convolution of the alive field with a
// 3x3 ring kernel. The field is zero-padded by two cells on each axis so the
// circular convolution never reads across an edge.
type fftCounter struct {
	w, h   int
	nx, ny int
	halfC  int

	realFFT  *fourier.FFT
	cmplxFFT *fourier.CmplxFFT

	kernelFreq []complex128
	freqBuf    []complex128
	colBuf     []complex128
	rowBuf     []float64
	normInv    float64
}

func newFFTCounter(w, h int) *fftCounter {
	f := &fftCounter{w: w, h: h, nx: w + 2, ny: h + 2}
	f.halfC = f.nx/2 + 1
	f.realFFT = fourier.NewFFT(f.nx)
	f.cmplxFFT = fourier.NewCmplxFFT(f.ny)
	f.normInv = 1 / float64(f.nx*f.ny)
	f.freqBuf = make([]complex128, f.ny*f.halfC)
	f.colBuf = make([]complex128, f.ny)
	f.rowBuf = make([]float64, f.nx)
	f.kernelFreq = make([]complex128, f.ny*f.halfC)

	kernel := make([]float64, f.nx*f.ny)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ky := (dy + f.ny) % f.ny
			kx := (dx + f.nx) % f.nx
			kernel[ky*f.nx+kx] = 1
		}
	}
	for y := 0; y < f.ny; y++ {
		f.realFFT.Coefficients(f.kernelFreq[y*f.halfC:(y+1)*f.halfC], kernel[y*f.nx:(y+1)*f.nx])
	}
	f.columns(f.kernelFreq, false)
	return f
}

func (f *fftCounter) Count(alive []bool, counts []uint8) {
	for y := 0; y < f.ny; y++ {
		for x := range f.rowBuf {
			f.rowBuf[x] = 0
			if x < f.w && y < f.h && alive[y*f.w+x] {
				f.rowBuf[x] = 1
			}
		}
		f.realFFT.Coefficients(f.freqBuf[y*f.halfC:(y+1)*f.halfC], f.rowBuf)
	}
	f.columns(f.freqBuf, false)

	for i := range f.freqBuf {
		f.freqBuf[i] *= f.kernelFreq[i]
	}

	f.columns(f.freqBuf, true)
	for y := 0; y < f.h; y++ {
		f.realFFT.Sequence(f.rowBuf, f.freqBuf[y*f.halfC:(y+1)*f.halfC])
		for x := 0; x < f.w; x++ {
			counts[y*f.w+x] = uint8(math.Round(f.rowBuf[x] * f.normInv))
		}
	}
}

// columns runs the complex transform down every coefficient column in place.
func (f *fftCounter) columns(buf []complex128, inverse bool) {
	for x := 0; x < f.halfC; x++ {
		for y := 0; y < f.ny; y++ {
			f.colBuf[y] = buf[y*f.halfC+x]
		}
		if inverse {
			f.cmplxFFT.Sequence(f.colBuf, f.colBuf)
		} else {
			f.cmplxFFT.Coefficients(f.colBuf, f.colBuf)
		}
		for y := 0; y < f.ny; y++ {
			buf[y*f.halfC+x] = f.colBuf[y]
		}
	}
}
