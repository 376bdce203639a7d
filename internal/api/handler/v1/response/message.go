package response

type Message struct {
	Message string `json:"message"`
}

type Login struct {
	Autorizado bool `json:"autorizado"`
}
