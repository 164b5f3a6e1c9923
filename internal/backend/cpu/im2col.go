package cpu

import (
	"fmt"

	"github.com/dpln-ml/dpln/internal/tensor"
)

// Im2Col2D rearranges sliding kh×kw windows of an already padded input into rows.
//
// Input shape:  [batch, channels, height, width]
// Output shape: [batch, out_h*out_w, channels*kh*kw]
//
// Where:
//
//	out_h = (height - kh) / sh + 1
//	out_w = (width - kw) / sw + 1
//
// Rows are enumerated with out_h outer and out_w inner. Within a row the
// patch is flattened channel-major, then kernel row, then kernel column,
// which is the order a [c_out, c_in, kh, kw] weight has once reshaped to
// [c_out, c_in*kh*kw]. Convolution then reduces to a single matmul:
//
//	out = weight.reshape(c_out, K) @ col.transpose(1, 2)
//
// Reference: "High Performance Convolutional Neural Networks for Document Processing"
// (Chellapilla et al., 2006).
func (cpu *CPUBackend) Im2Col2D(x *tensor.RawTensor, kh, kw, sh, sw int) *tensor.RawTensor {
	g := newIm2ColGeometry("im2col2d", x.Shape(), kh, kw, sh, sw)
	result := tensor.MustRaw(tensor.Shape{g.batch, g.outH * g.outW, g.channels * kh * kw})

	in, col := x.Data(), result.Data()
	cpu.forBatch(g.batch, g.channels, func(b, c int) {
		g.each(b, c, func(colIdx, imgIdx int) {
			col[colIdx] = in[imgIdx]
		})
	})
	return result
}

// Col2Im2D is the adjoint of Im2Col2D: every column entry is added back onto
// the image position it was gathered from. Overlapping windows (stride
// smaller than the kernel) accumulate.
func (cpu *CPUBackend) Col2Im2D(col *tensor.RawTensor, inShape tensor.Shape, kh, kw, sh, sw int) *tensor.RawTensor {
	g := newIm2ColGeometry("col2im2d", inShape, kh, kw, sh, sw)
	want := tensor.Shape{g.batch, g.outH * g.outW, g.channels * kh * kw}
	if !col.Shape().Equal(want) {
		panic(fmt.Sprintf("col2im2d: column shape %v does not match %v", col.Shape(), want))
	}
	result := tensor.MustRaw(inShape)

	src, img := col.Data(), result.Data()
	// Each (b, c) pair writes a disjoint image plane, so planes run in parallel.
	cpu.forBatch(g.batch, g.channels, func(b, c int) {
		g.each(b, c, func(colIdx, imgIdx int) {
			img[imgIdx] += src[colIdx]
		})
	})
	return result
}

type im2colGeometry struct {
	batch, channels, height, width int
	kh, kw, sh, sw                 int
	outH, outW                     int
}

func newIm2ColGeometry(name string, shape tensor.Shape, kh, kw, sh, sw int) im2colGeometry {
	if len(shape) != 4 {
		panic(fmt.Sprintf("%s: input must be 4D [N,C,H,W], got %v", name, shape))
	}
	if kh <= 0 || kw <= 0 || sh <= 0 || sw <= 0 {
		panic(fmt.Sprintf("%s: invalid kernel %dx%d / stride %dx%d", name, kh, kw, sh, sw))
	}
	g := im2colGeometry{
		batch: shape[0], channels: shape[1], height: shape[2], width: shape[3],
		kh: kh, kw: kw, sh: sh, sw: sw,
	}
	if g.height < kh || g.width < kw {
		panic(fmt.Sprintf("%s: kernel %dx%d larger than input %dx%d", name, kh, kw, g.height, g.width))
	}
	g.outH = (g.height-kh)/sh + 1
	g.outW = (g.width-kw)/sw + 1
	return g
}

// each visits every (column index, image index) pair that belongs to
// channel c of batch element b.
func (g im2colGeometry) each(b, c int, visit func(colIdx, imgIdx int)) {
	patch := g.channels * g.kh * g.kw
	positions := g.outH * g.outW
	plane := (b*g.channels + c) * g.height * g.width

	for oh := 0; oh < g.outH; oh++ {
		for ow := 0; ow < g.outW; ow++ {
			row := (b*positions + oh*g.outW + ow) * patch
			for i := 0; i < g.kh; i++ {
				ih := oh*g.sh + i
				for j := 0; j < g.kw; j++ {
					iw := ow*g.sw + j
					visit(row+(c*g.kh+i)*g.kw+j, plane+ih*g.width+iw)
				}
			}
		}
	}
}
