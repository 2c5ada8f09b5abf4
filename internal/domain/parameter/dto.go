package parameter

type UpdateParameterRequest struct {
	ID    string `json:"id"`
	Valor string `json:"valor"`
}

type ParameterResponse struct {
	ID    string `json:"id"`
	Clave string `json:"clave"`
	Valor string `json:"valor"`
}

func (p SystemParameter) ToResponse() ParameterResponse {
	return ParameterResponse{
		ID:    p.ID,
		Clave: p.Clave,
		Valor: p.Valor,
	}
}
