package crypto

// XORBytes は dst[i] = a[i] ^ b[i] を短い方の長さ分だけ計算し、処理したバイト数を返します。
// dst は a または b と同じスライスでも構いません。
func XORBytes(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}
