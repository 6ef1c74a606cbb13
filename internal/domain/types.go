package domain

// Default workflow label for a freshly received order.
const StatusSedangDicuci = "Sedang Dicuci"

// Labels used by the shop floor, listed on the index endpoint. The API does
// not enforce them.
const (
	StatusSiapDiambil = "Siap Diambil"
	StatusSelesai     = "Selesai"
)
