package postgres

import (
	"checkpoint/internal/infra/persistence/model"
)

// sampleLocations is the built-in seed set inserted once when the store is
// empty. A mix of resolved and unresolved records: the ones without a
// coordinate pair exercise the enrichment pipeline on first load.
func sampleLocations() []*model.LocationModel {
	return []*model.LocationModel{
		{
			Name:        "Milano Check Point",
			Address:     "Via Sammartini 21, Milano",
			Region:      "Milano",
			Services:    []string{"HIV test", "Syphilis test", "HCV test"},
			Category:    "Checkpoint",
			Contacts:    "+39 02 1234 5678",
			Website:     "https://www.milanocheckpoint.example",
			Coordinates: []float64{45.4895, 9.2037},
			Source:      "seed",
		},
		{
			Name:     "Checkpoint Bologna",
			Address:  "Via San Carlo 42, Bologna",
			Region:   "Bologna",
			Services: []string{"HIV test", "Syphilis test"},
			Category: "Checkpoint",
			Source:   "seed",
		},
		{
			Name:        "Ambulatorio IST Ospedale San Raffaele",
			Address:     "Via Olgettina 60, Milano",
			Region:      "Milano",
			Services:    []string{"HIV test", "Syphilis test", "Gonorrhea test", "Chlamydia test"},
			Category:    "Ospedale",
			Coordinates: []float64{45.5057, 9.2658},
			Source:      "seed",
		},
		{
			Name:     "Centro IST Policlinico Umberto I",
			Address:  "Viale del Policlinico 155, Roma",
			Services: []string{"HIV test", "Syphilis test", "HPV test"},
			Category: "Ospedale",
			Source:   "seed",
		},
		{
			Name:     "Laboratorio Analisi San Marco",
			Address:  "Via Garibaldi 12, Torino",
			Region:   "Torino",
			Services: []string{"HIV test", "HCV test", "Full STI panel"},
			Category: "Laboratorio",
			Contacts: "+39 011 987 6543",
			Source:   "seed",
		},
		{
			Name:     "Consultorio Familiare Trastevere",
			Address:  "Via della Lungaretta 87, Roma",
			Region:   "Roma",
			Category: "Consultorio",
			Source:   "seed",
		},
		{
			Name:        "Anlaids Napoli",
			Address:     "Via Toledo 205, Napoli",
			Region:      "Napoli",
			Services:    []string{"HIV test", "Syphilis test"},
			Category:    "Associazione",
			Coordinates: []float64{40.8433, 14.2492},
			Website:     "https://www.anlaids.example",
			Source:      "seed",
		},
	}
}
