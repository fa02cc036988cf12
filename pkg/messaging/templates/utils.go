package templates

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	messagingTypes "github.com/e5hapiro/chevra-guest-form/pkg/messaging/types"
)

func ResolveTemplate(tempName string, templateDef string, contentInfos map[string]string) (content string, err error) {
	if strings.TrimSpace(templateDef) == "" {
		return "", errors.New("empty template `" + tempName + "`")
	}
	tmpl, err := template.New(tempName).Option("missingkey=zero").Parse(templateDef)
	if err != nil {
		err = fmt.Errorf("error when parsing template %s: %v", tempName, err)
		return "", err
	}
	var tpl bytes.Buffer

	err = tmpl.Execute(&tpl, contentInfos)
	if err != nil {
		err = fmt.Errorf("error during executing template %s: %v", tempName, err)
		return "", err
	}
	return tpl.String(), nil
}

// ResolveEmail renders subject and body of tDef. Global constants are merged
// into the payload first so message specific values win.
func ResolveEmail(tDef messagingTypes.EmailTemplate, globalConstants map[string]string, payload map[string]string) (subject string, body string, err error) {
	contentInfos := map[string]string{}
	for k, v := range globalConstants {
		contentInfos[k] = v
	}
	for k, v := range payload {
		contentInfos[k] = v
	}

	subject, err = ResolveTemplate(tDef.MessageType+"-subject", tDef.SubjectDef, contentInfos)
	if err != nil {
		return "", "", err
	}
	body, err = ResolveTemplate(tDef.MessageType+"-body", tDef.BodyDef, contentInfos)
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(subject), body, nil
}

func CheckTemplateParsable(tDef messagingTypes.EmailTemplate) error {
	if _, _, err := ResolveEmail(tDef, nil, nil); err != nil {
		return errors.New("could not resolve template `" + tDef.MessageType + "` - error: " + err.Error())
	}
	return nil
}
