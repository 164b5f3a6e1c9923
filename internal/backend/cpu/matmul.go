package cpu

import (
	"fmt"

	"github.com/dpln-ml/dpln/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// MatMul performs matrix multiplication over the trailing two axes.
//
// Leading axes are batch axes and broadcast like element-wise operations:
//
//	[M, K] @ [K, N]          -> [M, N]
//	[M, K] @ [B, K, N]       -> [B, M, N]
//	[B, M, K] @ [B, K, N]    -> [B, M, N]
//	[B, 1, M, K] @ [H, K, N] -> [B, H, M, N]
//
// Each 2-D product is delegated to gonum's mat.Dense.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, err := tensor.MatMulShape(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}

	aShape, bShape := a.Shape(), b.Shape()
	m, k := aShape[len(aShape)-2], aShape[len(aShape)-1]
	n := bShape[len(bShape)-1]

	result := tensor.MustRaw(outShape)
	if m == 0 || n == 0 {
		return result
	}
	if k == 0 {
		return result // empty sum
	}

	batchShape := outShape[:len(outShape)-2]
	numBatches := batchShape.NumElements()
	aBatch := broadcastMap(aShape[:len(aShape)-2], batchShape)
	bBatch := broadcastMap(bShape[:len(bShape)-2], batchShape)

	aData, bData, outData := a.Data(), b.Data(), result.Data()
	cpu.forRows(numBatches, func(batch int) {
		ai := aBatch.index(batch) * m * k
		bi := bBatch.index(batch) * k * n
		oi := batch * m * n

		am := mat.NewDense(m, k, aData[ai:ai+m*k])
		bm := mat.NewDense(k, n, bData[bi:bi+k*n])
		om := mat.NewDense(m, n, outData[oi:oi+m*n])
		om.Mul(am, bm)
	})

	return result
}
