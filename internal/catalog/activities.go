package catalog

import "github.com/i474232898/weather-flight/internal/weather"

var (
	sunny  = weather.ConditionSunny
	cloudy = weather.ConditionCloudy
	rain   = weather.ConditionRain
)

var defaultActivities = []Activity{
	// Berga
	{Name: "Caminata por el malecón", Description: "Explora la costa a pie.", Category: "Al aire libre", Destination: "Berga", RecommendedFor: []weather.Condition{sunny, cloudy}},
	{Name: "Museo local", Description: "Arte e historia regional.", Category: "Cultural", Destination: "Berga", RecommendedFor: []weather.Condition{rain, cloudy}},
	{Name: "Tour gastronómico", Description: "Degusta platos típicos.", Category: "Gastronomía", Destination: "Berga", RecommendedFor: []weather.Condition{sunny, rain}},
	{Name: "Senderismo por el Parque Natural del Cadí-Moixeró", Description: "Explora rutas montañosas entre abetos, buitres y prados.", Category: "Al aire libre", Destination: "Berga", RecommendedFor: []weather.Condition{sunny, cloudy}},
	{Name: "Recorrido por los bunkers de la Guerra Civil", Description: "Conoce la memoria bélica de la región entre trincheras y paisajes.", Category: "Histórica", Destination: "Berga", RecommendedFor: []weather.Condition{cloudy}},
	{Name: "Ruta del Patum", Description: "Vive o comprende una de las fiestas más intensas de Europa.", Category: "Cultural", Destination: "Berga", RecommendedFor: []weather.Condition{cloudy}},
	{Name: "Ciclismo por la Via Verda del Llobregat", Description: "Pedalea junto al río y atraviesa túneles ferroviarios rehabilitados.", Category: "Aventura", Destination: "Berga", RecommendedFor: []weather.Condition{sunny}},
	{Name: "Taller de pan con leña", Description: "Aprende a hornear pan tradicional catalán en horno de piedra.", Category: "Gastronomía", Destination: "Berga", RecommendedFor: []weather.Condition{rain}},
	{Name: "Paseo nocturno por el centro histórico", Description: "Luces cálidas, piedra milenaria y aire montañés.", Category: "Romántico", Destination: "Berga", RecommendedFor: []weather.Condition{cloudy}},
	{Name: "Meditación en el Santuario de Queralt", Description: "Silencio, piedra y cielo para una pausa necesaria.", Category: "Espiritual", Destination: "Berga", RecommendedFor: []weather.Condition{sunny, cloudy}},

	// Salsipuedes
	{Name: "Excursión en kayak por la bahía", Description: "Navega entre formaciones rocosas y agua turquesa.", Category: "Aventura", Destination: "Salsipuedes", RecommendedFor: []weather.Condition{sunny}},
	{Name: "Pesca recreativa", Description: "Lanza la caña en un entorno pacífico y poco intervenido.", Category: "Al aire libre", Destination: "Salsipuedes", RecommendedFor: []weather.Condition{sunny}},
	{Name: "Observación de aves marinas", Description: "Fotografía pelícanos, cormoranes y gaviotas en su hábitat natural.", Category: "Al aire libre", Destination: "Salsipuedes", RecommendedFor: []weather.Condition{cloudy}},
	{Name: "Picnic con vista al acantilado", Description: "Un respiro entre olas y desierto.", Category: "Relax", Destination: "Salsipuedes", RecommendedFor: []weather.Condition{sunny}},
	{Name: "Snorkel en aguas tranquilas", Description: "Descubre la vida marina del Pacífico norte mexicano.", Category: "Aventura", Destination: "Salsipuedes", RecommendedFor: []weather.Condition{sunny}},
	{Name: "Toma de fotografías del oleaje", Description: "Escucha, observa, dispara: arte en estado líquido.", Category: "Creatividad", Destination: "Salsipuedes", RecommendedFor: []weather.Condition{cloudy}},
	{Name: "Caminata al amanecer", Description: "Siente el aire frío del mar antes de que despierte el mundo.", Category: "Al aire libre", Destination: "Salsipuedes", RecommendedFor: []weather.Condition{sunny}},
	{Name: "Charlas con pescadores locales", Description: "Aprende de la sabiduría marinera de generaciones.", Category: "Cultural", Destination: "Salsipuedes", RecommendedFor: []weather.Condition{cloudy}},
	{Name: "Lectura solitaria entre rocas", Description: "Un refugio para perderse en letras junto al mar.", Category: "Relax", Destination: "Salsipuedes", RecommendedFor: []weather.Condition{sunny, cloudy}},

	// Naco
	{Name: "Ruta del ferrocarril", Description: "Explora ruinas de estaciones y vías abandonadas.", Category: "Histórica", Destination: "Naco", RecommendedFor: []weather.Condition{cloudy}},
	{Name: "Degustación de coyotas", Description: "Prueba el dulce tradicional de Sonora hecho por manos locales.", Category: "Gastronomía", Destination: "Naco", RecommendedFor: []weather.Condition{rain}},
	{Name: "Cabalgata al atardecer", Description: "Paisaje desértico teñido de luz anaranjada.", Category: "Al aire libre", Destination: "Naco", RecommendedFor: []weather.Condition{sunny}},
	{Name: "Visita al Museo de la Frontera", Description: "Reflexiona sobre la vida en la línea divisoria con EE.UU.", Category: "Cultural", Destination: "Naco", RecommendedFor: []weather.Condition{rain}},
	{Name: "Taller de talabartería", Description: "Conoce el arte del cuero en manos sonorenses.", Category: "Artesanal", Destination: "Naco", RecommendedFor: []weather.Condition{cloudy}},
	{Name: "Caminata por el cerro El Perico", Description: "Panorama de desierto y frontera en un mismo vistazo.", Category: "Al aire libre", Destination: "Naco", RecommendedFor: []weather.Condition{sunny}},
	{Name: "Festival del Burro", Description: "Fiesta popular con música, comida y humor.", Category: "Cultural", Destination: "Naco", RecommendedFor: []weather.Condition{sunny}},
	{Name: "Pintura de paisaje desértico", Description: "Inmortaliza los tonos del norte en acuarela o pastel.", Category: "Creatividad", Destination: "Naco", RecommendedFor: []weather.Condition{cloudy}},

	// Xbox
	{Name: "Toma de selfies con el letrero ‘Xbox’", Description: "El pueblo con nombre de consola: un fenómeno en sí mismo.", Category: "Curioso", Destination: "Xbox", RecommendedFor: []weather.Condition{sunny, cloudy}},
	{Name: "Charlas comunitarias sobre el origen del nombre", Description: "Escucha historias reales y mitos que rodean el nombre.", Category: "Cultural", Destination: "Xbox", RecommendedFor: []weather.Condition{rain}},
	{Name: "Torneo de videojuegos local", Description: "Competencia entre generaciones en un contexto rural inédito.", Category: "Social", Destination: "Xbox", RecommendedFor: []weather.Condition{rain, cloudy}},
	{Name: "Taller de bordado maya", Description: "Rescate de tradiciones que conviven con la modernidad nominal.", Category: "Artesanal", Destination: "Xbox", RecommendedFor: []weather.Condition{rain}},
	{Name: "Comida yucateca casera", Description: "Panuchos, salbutes, relleno negro y buen humor local.", Category: "Gastronomía", Destination: "Xbox", RecommendedFor: []weather.Condition{sunny, rain}},
	{Name: "Tour fotográfico de ironía rural", Description: "Imágenes donde se cruzan dos mundos: el maya y el digital.", Category: "Creatividad", Destination: "Xbox", RecommendedFor: []weather.Condition{sunny}},
	{Name: "Cine al aire libre con películas de acción", Description: "Ríe viendo Rápido y Furioso en el pueblo de Xbox.", Category: "Social", Destination: "Xbox", RecommendedFor: []weather.Condition{cloudy}},
	{Name: "Caminata por caminos de piedra blanca", Description: "Naturaleza, sol y aire que huele a milpa y pasto recién cortado.", Category: "Al aire libre", Destination: "Xbox", RecommendedFor: []weather.Condition{sunny}},

	// Válgame Dios
	{Name: "Ruta del nombre: ¿por qué se llama así?", Description: "Historias de accidentes, milagros y sustos fundacionales.", Category: "Cultural", Destination: "Válgame Dios", RecommendedFor: []weather.Condition{cloudy, rain}},
	{Name: "Visita a la capilla del pueblo", Description: "Religiosidad rural y arquitectura sin artificios.", Category: "Espiritual", Destination: "Válgame Dios", RecommendedFor: []weather.Condition{sunny, cloudy}},
	{Name: "Comida de rancho sinaloense", Description: "Machaca, chilorio y frijoles puercos servidos con tortillas recién hechas.", Category: "Gastronomía", Destination: "Válgame Dios", RecommendedFor: []weather.Condition{sunny, rain}},
	{Name: "Taller de corridos tradicionales", Description: "Composición oral como testimonio de la vida cotidiana y sus excesos.", Category: "Cultural", Destination: "Válgame Dios", RecommendedFor: []weather.Condition{rain}},
	{Name: "Festival de la exclamación", Description: "Eventos lúdicos y teatrales inspirados en el nombre del pueblo.", Category: "Creatividad", Destination: "Válgame Dios", RecommendedFor: []weather.Condition{cloudy}},
	{Name: "Caminata por veredas rurales", Description: "Monte bajo, insectos cantores y horizonte sin interrupciones.", Category: "Al aire libre", Destination: "Válgame Dios", RecommendedFor: []weather.Condition{sunny}},
	{Name: "Tarde de leyendas populares", Description: "Historias de aparecidos, tesoros enterrados y santos fugitivos.", Category: "Cultural", Destination: "Válgame Dios", RecommendedFor: []weather.Condition{cloudy}},
	{Name: "Observación astronómica rural", Description: "Cielo profundo y estrellado como en los tiempos antiguos.", Category: "Al aire libre", Destination: "Válgame Dios", RecommendedFor: []weather.Condition{sunny, cloudy}},
}
