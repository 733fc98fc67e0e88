package vertexdata

// ScaleUV returns a copy of uvs with u multiplied by su and v by sv. Sampling
// with a repeat or mirror address mode then tiles the texture across each
// face without touching the mesh topology.
func ScaleUV(uvs [][2]float32, su, sv float32) [][2]float32 {
	out := make([][2]float32, len(uvs))
	for i, uv := range uvs {
		out[i] = [2]float32{uv[0] * su, uv[1] * sv}
	}
	return out
}
