package dashboard

// Reporting queries. Every value that does not come from this file is bound
// as a parameter.
const (
	QueryInvestmentByType = `SELECT t.tipo, SUM(i.monto) AS total
FROM inversiones i
JOIN proyectos p ON i.proyecto_id = p.id_proyecto
JOIN tipos_energia t ON p.tipo_energia = t.id_tipo
GROUP BY t.tipo`

	QueryProjects = `SELECT nombre, ubicacion, fecha_inicio FROM proyectos`

	QueryProjectDetail = `SELECT p.nombre, p.ubicacion, t.tipo AS energia, i.monto AS inversion
FROM proyectos p
JOIN tipos_energia t ON p.tipo_energia = t.id_tipo
JOIN inversiones i ON p.id_proyecto = i.proyecto_id
WHERE p.nombre = $1`

	QueryProjectTeam = `SELECT i.nombre AS investigador, i.apellido, i.especialidad, e.nombre AS empresa, e.industria
FROM proyectos p
LEFT JOIN investigadores i ON p.id_proyecto = i.proyecto_id
LEFT JOIN empresas e ON p.id_proyecto = e.proyecto_id
WHERE p.nombre = $1`

	QueryGenerationByProject = `SELECT p.nombre, e.kw_h_generado
FROM eficiencia_energetica e
JOIN proyectos p ON e.proyecto_id = p.id_proyecto`

	QueryInvestmentByLocation = `SELECT p.ubicacion, SUM(i.monto) AS total_monto
FROM proyectos p
JOIN inversiones i ON p.id_proyecto = i.proyecto_id
GROUP BY p.ubicacion
ORDER BY total_monto DESC`

	QueryMinerals = `SELECT m.nombre, m.ubicacion, p.nombre AS proyecto, m.descripcion
FROM minerales m
LEFT JOIN proyectos p ON m.proyecto_asociado = p.id_proyecto`
)

// Result columns, as lower-cased by the server for unquoted aliases.
const (
	colType        = "tipo"
	colTotal       = "total"
	colName        = "nombre"
	colLocation    = "ubicacion"
	colStartDate   = "fecha_inicio"
	colEnergy      = "energia"
	colInvestment  = "inversion"
	colResearcher  = "investigador"
	colLastName    = "apellido"
	colSpecialty   = "especialidad"
	colCompany     = "empresa"
	colIndustry    = "industria"
	colGenerated   = "kw_h_generado"
	colTotalAmount = "total_monto"
	colProject     = "proyecto"
	colDescription = "descripcion"
)

// Section names, used as metric labels.
const (
	SectionInvestmentByType     = "investment_by_type"
	SectionProjects             = "projects"
	SectionProjectDetail        = "project_detail"
	SectionProjectTeam          = "project_team"
	SectionGeneration           = "generation"
	SectionInvestmentByLocation = "investment_by_location"
	SectionMinerals             = "minerals"
)

// Titles shown above each section.
const (
	TitleInvestmentByType     = "Investment by energy type"
	TitleProjects             = "Projects"
	TitleGeneration           = "Energy generated per project (kWh)"
	TitleInvestmentByLocation = "Investment by location"
	TitleMinerals             = "Minerals"
	TitleProjection           = "Investment growth projection"
)

const (
	MsgNotAvailable      = "n/a"
	MsgNoPersonnel       = "No personnel assigned to this project."
	MsgNoData            = "No data available."
	MsgNoProjects        = "No projects registered yet."
	MsgNoMatchingMineral = "No minerals match the filter."

	LabelTotalInvestment   = "Total investment"
	LabelProjectCount      = "Total projects"
	LabelAverageGeneration = "Average generation per project"

	dateLayout = "2006-01-02"
)
