package forms

import "github.com/ACORDE/memorial-acervo/src/models"

const emptyChoiceLabel = "Selecione uma opção"

// Form names accepted by Lookup.
const (
	PieceForm            = "peca"
	PersonForm           = "pessoa"
	ExhibitionForm       = "exposicao"
	AxisForm             = "eixo"
	InternalLocationForm = "local-interno"
	EventTypeForm        = "tipo-evento"
	HistoryForm          = "historico"
	MediaForm            = "midia"
	SystemConfigForm     = "configuracoes"
)

var PieceDefinition = Definition{
	Name: PieceForm,
	Fields: []FieldSpec{
		{Name: "denomination", Label: "Denominação da peça", Kind: KindText, Required: true, MaxLength: 100, Placeholder: "Digite a denominação interna da peça"},
		{Name: "authorIds", Label: "Autores da obra", Kind: KindMultiSelect, HelpText: "Selecione um ou mais autores. Use Ctrl ou Command para múltipla seleção."},
		{Name: "titleByAuthor", Label: "Título atribuído pelo autor(a)", Kind: KindText, Required: true, MaxLength: 100, Placeholder: "Informe o título atribuído pelo(a) autor(a)"},
		{Name: "registryNumber", Label: "Número de registro", Kind: KindText, MaxLength: 10, Placeholder: "Ex.: 1234-AB"},
		{Name: "orderNumber", Label: "Número de ordem", Kind: KindText, MaxLength: 3, Placeholder: "Ex.: 001"},
		{Name: "status", Label: "Situação", Kind: KindSelect, Required: true, Choices: models.PieceStatusChoices},
		{Name: "thesaurus", Label: "Thesaurus", Kind: KindText, MaxLength: 100, Placeholder: "Termos controlados associados à peça", HelpText: "Informe termos controlados relacionados à peça."},
		{Name: "description", Label: "Descrição", Kind: KindTextarea, Required: true, Rows: 3, Placeholder: "Descreva a peça de forma objetiva"},
		{Name: "dimensions", Label: "Dimensões", Kind: KindText, MaxLength: 30, Placeholder: "Ex.: 30 cm x 50 cm x 2 cm", HelpText: "Exemplo: 30 cm x 50 cm x 2 cm."},
		{Name: "materialTechnique", Label: "Material e técnica", Kind: KindTextarea, Required: true, Rows: 3, Placeholder: "Detalhe materiais e técnicas utilizados"},
		{Name: "conservationState", Label: "Estado de conservação", Kind: KindSelect, Required: true, Choices: models.ConservationChoices},
		{Name: "productionPlace", Label: "Local de produção", Kind: KindText, Required: true, MaxLength: 200, Placeholder: "Informe a cidade, estado ou país"},
		{Name: "productionStartDate", Label: "Data inicial de produção", Kind: KindDate},
		{Name: "productionEndDate", Label: "Data final de produção", Kind: KindDate},
		{Name: "canReproduce", Label: "Pode reproduzir?", Kind: KindCheckbox},
		{Name: "reproductionConditions", Label: "Condições para reprodução", Kind: KindTextarea, Rows: 3, Placeholder: "Descreva as condições de uso e reprodução", HelpText: "Descreva condições ou restrições para reprodução."},
		{Name: "typology", Label: "Tipologia", Kind: KindSelect, Required: true, Choices: models.TypologyChoices},
		{Name: "acquisitionMethod", Label: "Forma de aquisição", Kind: KindSelect, Required: true, Choices: models.AcquisitionChoices},
		{Name: "organizingAxisId", Label: "Eixo organizador", Kind: KindSelect, EmptyLabel: emptyChoiceLabel},
		{Name: "exhibitionId", Label: "Exposição", Kind: KindSelect, EmptyLabel: emptyChoiceLabel},
		{Name: "internalLocationId", Label: "Localização interna", Kind: KindSelect, EmptyLabel: emptyChoiceLabel},
		{Name: "published", Label: "Publicar no site", Kind: KindCheckbox},
	},
}

var PersonDefinition = Definition{
	Name: PersonForm,
	Fields: []FieldSpec{
		{Name: "name", Label: "Nome completo", Kind: KindText, Required: true, MaxLength: 100},
		{Name: "email", Label: "Email(s)", Kind: KindEmail, MaxLength: 100},
		{Name: "phones", Label: "Telefone(s)", Kind: KindText, MaxLength: 40, HelpText: "Informe um ou mais telefones. Separe por vírgula, se necessário."},
		{Name: "birthplace", Label: "Naturalidade", Kind: KindText, MaxLength: 40},
		{Name: "nationality", Label: "Nacionalidade", Kind: KindText, MaxLength: 20},
		{Name: "birthDate", Label: "Data de nascimento", Kind: KindDate},
		{Name: "biography", Label: "Biografia", Kind: KindTextarea, Required: true, Rows: 4, HelpText: "Resumo da trajetória ou informações relevantes."},
		{Name: "naturalPerson", Label: "Pessoa física?", Kind: KindCheckbox},
		{Name: "isAuthor", Label: "Autor(a) de obra?", Kind: KindCheckbox},
	},
}

var ExhibitionDefinition = Definition{
	Name: ExhibitionForm,
	Fields: []FieldSpec{
		{Name: "name", Label: "Exposição", Kind: KindText, Required: true, MaxLength: 200},
		{Name: "description", Label: "Descrição", Kind: KindTextarea, Required: true, Rows: 3},
		{Name: "startDate", Label: "Data de início", Kind: KindDate, Required: true},
		{Name: "endDate", Label: "Data de encerramento", Kind: KindDate, Required: true},
		{Name: "location", Label: "Local(ais)", Kind: KindText, Required: true, MaxLength: 255},
		{Name: "organizer", Label: "Organizador(es)", Kind: KindText, Required: true, MaxLength: 200},
		{Name: "physical", Label: "Exposição física", Kind: KindCheckbox},
	},
}

var AxisDefinition = Definition{
	Name: AxisForm,
	Fields: []FieldSpec{
		{Name: "label", Label: "Eixo", Kind: KindText, Required: true, MaxLength: 100},
	},
}

var InternalLocationDefinition = Definition{
	Name: InternalLocationForm,
	Fields: []FieldSpec{
		{Name: "label", Label: "Local na ACORDE", Kind: KindText, Required: true, MaxLength: 100},
	},
}

var EventTypeDefinition = Definition{
	Name: EventTypeForm,
	Fields: []FieldSpec{
		{Name: "description", Label: "Tipo do evento", Kind: KindText, Required: true, MaxLength: 100},
	},
}

var HistoryDefinition = Definition{
	Name: HistoryForm,
	Fields: []FieldSpec{
		{Name: "eventTypeId", Label: "Tipo do evento", Kind: KindSelect, Required: true, EmptyLabel: emptyChoiceLabel},
		{Name: "responsibleId", Label: "Responsável", Kind: KindSelect, EmptyLabel: emptyChoiceLabel},
		{Name: "description", Label: "Detalhamento do evento", Kind: KindTextarea, Rows: 3},
		{Name: "startDate", Label: "Data de início", Kind: KindDate, Required: true},
		{Name: "endDate", Label: "Data final", Kind: KindDate, Required: true},
	},
}

var MediaDefinition = Definition{
	Name: MediaForm,
	Fields: []FieldSpec{
		{Name: "tipo", Label: "Tipo da mídia", Kind: KindSelect, Required: true, Choices: models.MediaTypeChoices},
		{Name: "arquivo", Label: "Arquivo", Kind: KindFile, Required: true},
		{Name: "legenda", Label: "Legenda", Kind: KindText, Required: true, MaxLength: 120},
		{Name: "texto_descricao", Label: "Texto de descrição", Kind: KindTextarea, Rows: 3},
		{Name: "audio_descricao", Label: "Áudiodescrição", Kind: KindFile},
		{Name: "DELETE", Label: "Remover", Kind: KindCheckbox},
	},
}

var SystemConfigDefinition = Definition{
	Name: SystemConfigForm,
	Fields: []FieldSpec{
		{Name: "openAiKey", Label: "Chave da OpenAI", Kind: KindTextarea, Rows: 2},
	},
}

var definitions = map[string]Definition{
	PieceForm:            PieceDefinition,
	PersonForm:           PersonDefinition,
	ExhibitionForm:       ExhibitionDefinition,
	AxisForm:             AxisDefinition,
	InternalLocationForm: InternalLocationDefinition,
	EventTypeForm:        EventTypeDefinition,
	HistoryForm:          HistoryDefinition,
	MediaForm:            MediaDefinition,
	SystemConfigForm:     SystemConfigDefinition,
}

// Lookup returns the definition registered under name.
func Lookup(name string) (Definition, bool) {
	def, ok := definitions[name]
	return def, ok
}
