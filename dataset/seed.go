package dataset

import "github.com/poiesic/sharki/core"

// Default returns the built-in Universidad del Pacífico dataset.
// It serves as the seed for new record stores and as the fallback
// when neither the record store nor a snapshot is available.
func Default() *core.Dataset {
	return &core.Dataset{
		Classrooms: []core.ClassroomRecord{
			{
				Id:          "1",
				Name:        "Aula 101",
				Building:    "Torre 1",
				Floor:       "Planta Baja",
				Description: "Torre 1 - Planta Baja - Lado Este",
				Capacity:    40,
				Equipment:   []string{"Proyector", "Sistema de sonido", "Aire acondicionado"},
			},
			{
				Id:          "2",
				Name:        "Aula 203",
				Building:    "Torre 1",
				Floor:       "Piso 2",
				Description: "Torre 1 - Piso 2 - Ala Sur",
				Capacity:    35,
				Equipment:   []string{"Proyector", "Pizarra inteligente"},
			},
			{
				Id:          "3",
				Name:        "Aula 305",
				Building:    "Torre 2",
				Floor:       "Piso 3",
				Description: "Torre 2 - Piso 3 - Sector Norte",
				Capacity:    50,
				Equipment:   []string{"Proyector", "Sistema de sonido", "Aire acondicionado", "Computadoras"},
			},
			{
				Id:          "4",
				Name:        "Laboratorio 1",
				Building:    "Edificio de Ciencias",
				Floor:       "Piso 1",
				Description: "Edificio de Ciencias - Piso 1 - Laboratorio de Informática",
				Capacity:    30,
				Equipment:   []string{"30 Computadoras", "Proyector", "Aire acondicionado"},
			},
			{
				Id:          "5",
				Name:        "Auditorio Principal",
				Building:    "Edificio Central",
				Floor:       "Planta Baja",
				Description: "Edificio Central - Planta Baja - Auditorio Principal",
				Capacity:    200,
				Equipment:   []string{"Sistema audiovisual completo", "Micrófono inalámbrico", "Aire acondicionado"},
			},
		},
		Staff: []core.StaffRecord{
			{
				Id:         "1",
				Name:       "Dr. Carlos López",
				Email:      "clopez@upacifico.edu.py",
				Department: "Ingeniería",
				Position:   "Profesor Titular",
				Phone:      "021-123-456",
				Office:     "Torre 1 - Oficina 201",
			},
			{
				Id:         "2",
				Name:       "Dra. María González",
				Email:      "mgonzalez@upacifico.edu.py",
				Department: "Administración",
				Position:   "Doctora",
				Phone:      "021-123-457",
				Office:     "Torre 2 - Oficina 301",
			},
			{
				Id:         "3",
				Name:       "Ing. Roberto Silva",
				Email:      "rsilva@upacifico.edu.py",
				Department: "Ingeniería",
				Position:   "Profesor Adjunto",
				Phone:      "021-123-458",
				Office:     "Torre 1 - Oficina 205",
			},
			{
				Id:         "4",
				Name:       "Lic. Ana Martínez",
				Email:      "amartinez@upacifico.edu.py",
				Department: "Humanidades",
				Position:   "Profesora",
				Phone:      "021-123-459",
				Office:     "Edificio Central - Oficina 102",
			},
			{
				Id:         "5",
				Name:       "Dr. Luis Fernández",
				Email:      "lfernandez@upacifico.edu.py",
				Department: "Ciencias",
				Position:   "Director de Investigación",
				Phone:      "021-123-460",
				Office:     "Edificio de Ciencias - Oficina 301",
			},
		},
		Schedules: []core.ScheduleRecord{
			{
				Id:        "1",
				Subject:   "Programación I",
				StaffName: "Dr. Carlos López",
				Classroom: "Laboratorio 1",
				Time:      "08:00 - 10:00",
				Days:      []string{"Lunes", "Miércoles", "Viernes"},
				Career:    "Ingeniería en Informática",
			},
			{
				Id:        "2",
				Subject:   "Administración Estratégica",
				StaffName: "Dra. María González",
				Classroom: "Aula 203",
				Time:      "14:00 - 16:00",
				Days:      []string{"Martes", "Jueves"},
				Career:    "Administración de Empresas",
			},
			{
				Id:        "3",
				Subject:   "Matemática I",
				StaffName: "Dr. Luis Fernández",
				Classroom: "Aula 101",
				Time:      "10:00 - 12:00",
				Days:      []string{"Lunes", "Miércoles", "Viernes"},
				Career:    "Ingeniería en Informática",
			},
			{
				Id:        "4",
				Subject:   "Literatura Paraguaya",
				StaffName: "Lic. Ana Martínez",
				Classroom: "Aula 305",
				Time:      "16:00 - 18:00",
				Days:      []string{"Martes", "Jueves"},
				Career:    "Letras",
			},
			{
				Id:        "5",
				Subject:   "Estructuras de Datos",
				StaffName: "Ing. Roberto Silva",
				Classroom: "Laboratorio 1",
				Time:      "14:00 - 16:00",
				Days:      []string{"Lunes", "Miércoles"},
				Career:    "Ingeniería en Informática",
			},
		},
		Contacts: []core.ContactRecord{
			{
				Id:       "1",
				Area:     "Secretaría Académica",
				Email:    "academica@upacifico.edu.py",
				Phone:    "021-123-400",
				Location: "Torre 1 - Planta Baja",
				Hours:    "Lunes a Viernes 07:00 - 17:00",
			},
			{
				Id:       "2",
				Area:     "Admisiones",
				Email:    "admisiones@upacifico.edu.py",
				Phone:    "021-123-401",
				Location: "Edificio Central - Planta Baja",
				Hours:    "Lunes a Viernes 07:00 - 17:00, Sábados 08:00 - 12:00",
			},
			{
				Id:       "3",
				Area:     "Biblioteca",
				Email:    "biblioteca@upacifico.edu.py",
				Phone:    "021-123-402",
				Location: "Torre 2 - Piso 1",
				Hours:    "Lunes a Viernes 07:00 - 20:00, Sábados 08:00 - 16:00",
			},
			{
				Id:       "4",
				Area:     "Bienestar Estudiantil",
				Email:    "bienestar@upacifico.edu.py",
				Phone:    "021-123-403",
				Location: "Torre 1 - Piso 1",
				Hours:    "Lunes a Viernes 08:00 - 16:00",
			},
			{
				Id:       "5",
				Area:     "Tesorería",
				Email:    "tesoreria@upacifico.edu.py",
				Phone:    "021-123-404",
				Location: "Torre 2 - Planta Baja",
				Hours:    "Lunes a Viernes 07:00 - 15:00",
			},
		},
	}
}
