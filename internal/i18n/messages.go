package i18n

import "github.com/playperu/aula/internal/aula"

// messages holds the display strings per language. Keys ending in a
// format (imageCounter, phaseName) take integer arguments.
var messages = map[aula.Language]map[string]string{
	Castilian: {
		"appTitle":         "Dinámica de Clase",
		"sidebarTitle":     "Gestor de Clase",
		"phasesHeader":     "Fases de Actividad",
		"configHeader":     "Configuración",
		"settingsLabel":    "Ajustes",
		"languageHeader":   "Idioma",
		"imageCounter":     "Imagen %d de %d",
		"noImage":          "Sin imagen",
		"noImageAssigned":  "Sin imagen asignada",
		"prev":             "Anterior",
		"next":             "Siguiente",
		"resetPhase":       "Reiniciar Fase",
		"settingsTitle":    "Ajustes de la Dinámica",
		"settingsSubtitle": "Personaliza los colores de fondo y las imágenes para cada fase.",
		"bgColorLabel":     "Color de Fondo",
		"selectColor":      "Selecciona un color",
		"galleryLabel":     "Galería de Imágenes",
		"imageUrlLabel":    "URL de Imagen",
		"uploadFileLabel":  "Subir archivo",
		"votesLabel":       "Votos",
		"voteUp":           "Votar a favor",
		"voteDown":         "Votar en contra",
		"phaseName":        "Fase %d",
	},
	Catalan: {
		"appTitle":         "Dinàmica de Classe",
		"sidebarTitle":     "Gestor de Classe",
		"phasesHeader":     "Fases d'Activitat",
		"configHeader":     "Configuració",
		"settingsLabel":    "Ajustaments",
		"languageHeader":   "Idioma",
		"imageCounter":     "Imatge %d de %d",
		"noImage":          "Sense imatge",
		"noImageAssigned":  "Sense imatge assignada",
		"prev":             "Anterior",
		"next":             "Següent",
		"resetPhase":       "Reiniciar Fase",
		"settingsTitle":    "Ajustaments de la Dinàmica",
		"settingsSubtitle": "Personalitza els colors de fons i les imatges per a cada fase.",
		"bgColorLabel":     "Color de Fons",
		"selectColor":      "Selecciona un color",
		"galleryLabel":     "Galeria d'Imatges",
		"imageUrlLabel":    "URL de la Imatge",
		"uploadFileLabel":  "Pujar arxiu",
		"votesLabel":       "Vots",
		"voteUp":           "Votar a favor",
		"voteDown":         "Votar en contra",
		"phaseName":        "Fase %d",
	},
	English: {
		"appTitle":         "Classroom Dynamics",
		"sidebarTitle":     "Class Manager",
		"phasesHeader":     "Activity Phases",
		"configHeader":     "Configuration",
		"settingsLabel":    "Settings",
		"languageHeader":   "Language",
		"imageCounter":     "Image %d of %d",
		"noImage":          "No image",
		"noImageAssigned":  "No image assigned",
		"prev":             "Previous",
		"next":             "Next",
		"resetPhase":       "Reset Phase",
		"settingsTitle":    "Dynamics Settings",
		"settingsSubtitle": "Customize background colors and images for each phase.",
		"bgColorLabel":     "Background Color",
		"selectColor":      "Select a color",
		"galleryLabel":     "Image Gallery",
		"imageUrlLabel":    "Image URL",
		"uploadFileLabel":  "Upload file",
		"votesLabel":       "Votes",
		"voteUp":           "Vote up",
		"voteDown":         "Vote down",
		"phaseName":        "Phase %d",
	},
}
