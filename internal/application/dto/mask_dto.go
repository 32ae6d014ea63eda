package dto

// MaskRequest valor crudo tecleado por el usuario.
type MaskRequest struct {
	Value string `json:"value" validate:"max=64"`
}

// MaskResponse valor con la máscara aplicada.
type MaskResponse struct {
	Kind   string `json:"kind"`
	Masked string `json:"masked"`
}
