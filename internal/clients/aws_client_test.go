package clients

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslateAPI struct {
	out   *translate.TranslateTextOutput
	err   error
	input *translate.TranslateTextInput
}

func (f *fakeTranslateAPI) TranslateText(_ context.Context, params *translate.TranslateTextInput, _ ...func(*translate.Options)) (*translate.TranslateTextOutput, error) {
	f.input = params
	return f.out, f.err
}

func TestAWSTranslateClient_Translate(t *testing.T) {
	api := &fakeTranslateAPI{out: &translate.TranslateTextOutput{TranslatedText: aws.String("joy")}}
	c := &AWSTranslateClient{api: api}

	got, err := c.Translate(context.Background(), "기쁨")
	require.NoError(t, err)
	assert.Equal(t, "joy", got)
	assert.Equal(t, "auto", aws.ToString(api.input.SourceLanguageCode))
	assert.Equal(t, "en", aws.ToString(api.input.TargetLanguageCode))
	assert.Equal(t, "기쁨", aws.ToString(api.input.Text))
	assert.Equal(t, "aws", c.Name())
}

func TestAWSTranslateClient_Errors(t *testing.T) {
	c := &AWSTranslateClient{api: &fakeTranslateAPI{err: errors.New("throttled")}}
	_, err := c.Translate(context.Background(), "기쁨")
	assert.ErrorContains(t, err, "throttled")

	c = &AWSTranslateClient{api: &fakeTranslateAPI{out: &translate.TranslateTextOutput{}}}
	_, err = c.Translate(context.Background(), "기쁨")
	assert.Error(t, err)
}
