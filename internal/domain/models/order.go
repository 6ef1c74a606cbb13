package models

// ServiceOrder mirrors one row of the items table.
type ServiceOrder struct {
	ID             int64   `json:"id"`
	Nama           string  `json:"nama"`
	Status         string  `json:"status"`
	TanggalMasuk   string  `json:"tanggal_masuk"`
	TanggalSelesai *string `json:"tanggal_selesai"`
}

// NewServiceOrder is a fully defaulted row ready for insert.
type NewServiceOrder struct {
	Nama           string
	Status         string
	TanggalMasuk   string
	TanggalSelesai *string
}

// OrderPatch carries only the columns an update should touch.
// SetTanggalSelesai distinguishes "clear to NULL" from "leave alone".
type OrderPatch struct {
	Nama              *string
	Status            *string
	TanggalMasuk      *string
	TanggalSelesai    *string
	SetTanggalSelesai bool
}

func (p OrderPatch) IsEmpty() bool {
	return p.Nama == nil && p.Status == nil && p.TanggalMasuk == nil && !p.SetTanggalSelesai
}

// Apply returns o with the patch applied.
func (p OrderPatch) Apply(o ServiceOrder) ServiceOrder {
	if p.Nama != nil {
		o.Nama = *p.Nama
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.TanggalMasuk != nil {
		o.TanggalMasuk = *p.TanggalMasuk
	}
	if p.SetTanggalSelesai {
		if p.TanggalSelesai == nil {
			o.TanggalSelesai = nil
		} else {
			v := *p.TanggalSelesai
			o.TanggalSelesai = &v
		}
	}
	return o
}

// OrderFilter narrows a listing. Empty Status means no filter; otherwise
// status must match exactly.
type OrderFilter struct {
	Status string
}
