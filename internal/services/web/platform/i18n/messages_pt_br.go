package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, "app.name", "Sol-Calc")
	message.SetString(lang, "title.project", "%s | Projeto Solar")
	message.SetString(lang, "project.heading", "Sol-Calc")
	message.SetString(lang, "project.calculate", "Calcular")
	message.SetString(lang, "project.project_id", "ID do projeto:")
	message.SetString(lang, "project.checkout", "Pagamento")
	message.SetString(lang, "project.checkout_url", "URL de pagamento:")
	message.SetString(lang, "project.download", "Baixar PDF")
	message.SetString(lang, "project.pdf_url", "URL do PDF:")

	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	message.SetString(lang, "web.error.page_title_not_found", "Página não encontrada")
	message.SetString(lang, "web.error.page_title_server_error", "Algo deu errado")
	message.SetString(lang, "web.error.message_not_found", "A página solicitada não existe.")
	message.SetString(lang, "web.error.message_server_error", "Não foi possível concluir a solicitação.")
	message.SetString(lang, "web.error.action_back", "Voltar ao projeto")
}
