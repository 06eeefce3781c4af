package models

// Hotel mirrors one document of the "hoteles" collection. Every attribute is
// stored as free text in the source data (coordinates included); only the id
// is guaranteed to be present. Categories and Modalities are routinely empty
// and consumers must treat that as "unknown".
type Hotel struct {
	ID                   string `bson:"_id,omitempty" json:"_id,omitempty"`
	Categories           string `bson:"categories,omitempty" json:"categories,omitempty"`
	CategoryID           string `bson:"category_id,omitempty" json:"category_id,omitempty"`
	CoordX               string `bson:"coord_x,omitempty" json:"coord_x,omitempty"`
	CoordY               string `bson:"coord_y,omitempty" json:"coord_y,omitempty"`
	EstablishmentAddress string `bson:"establishment_address,omitempty" json:"establishment_address,omitempty"`
	Group                string `bson:"group,omitempty" json:"group,omitempty"`
	Holder               string `bson:"holder,omitempty" json:"holder,omitempty"`
	IdentificationDocNum string `bson:"identification_doc_num,omitempty" json:"identification_doc_num,omitempty"`
	Mobile               string `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Modalities           string `bson:"modalities,omitempty" json:"modalities,omitempty"`
	Municipalities       string `bson:"municipalities,omitempty" json:"municipalities,omitempty"`
	Name                 string `bson:"name,omitempty" json:"name,omitempty"`
	Phone                string `bson:"phone,omitempty" json:"phone,omitempty"`
	PostalCode           string `bson:"postal_code,omitempty" json:"postal_code,omitempty"`
	Provinces            string `bson:"provinces,omitempty" json:"provinces,omitempty"`
	RegistrationCode     string `bson:"registration_code,omitempty" json:"registration_code,omitempty"`
	RoadName             string `bson:"road_name,omitempty" json:"road_name,omitempty"`
}
