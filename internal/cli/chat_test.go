package cli

import (
	"testing"

	"github.com/alexanderramin/faqbot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_FullSession(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "what time do you open\ny\nxyz123 nonsense\nbye\n", "chat")
	require.NoError(t, err)

	assert.Contains(t, out, "Hello! Welcome to Amaze Africa Fabrics.\nI can answer common questions. Type 'bye' to exit.\n")
	assert.Contains(t, out, "You: Bot: "+testutil.HoursAnswer+"\nBot: Was this helpful? (y/n): You: ")
	assert.Contains(t, out, "Bot: I'm sorry, I don't understand your question.")
	assert.Contains(t, out, "Bot: Thank you for visiting Amaze Africa Fabrics. Goodbye!\n")

	fb := env.feedback.Feedback()
	require.Len(t, fb, 1)
	assert.Equal(t, "what time do you open", fb[0].Question)
	assert.Equal(t, testutil.HoursAnswer, fb[0].Answer)
	assert.True(t, fb[0].Helpful)

	require.Len(t, env.unanswered.Unanswered(), 1)
	assert.Equal(t, "xyz123 nonsense", env.unanswered.Unanswered()[0].Query)
}

func TestChat_RootCommandChats(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "Bye!\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Goodbye!")
	assert.Empty(t, env.unanswered.Unanswered())
}

func TestChat_InvalidVoteIsThankedNotRecorded(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "where can i find your shop\nmaybe\nbye\n", "chat")
	require.NoError(t, err)

	assert.Contains(t, out, "Bot: "+testutil.LocationAnswer)
	assert.Contains(t, out, "Bot: Thanks for the feedback!\n")
	assert.Empty(t, env.feedback.Feedback())
}

func TestChat_VoteIsCaseInsensitive(t *testing.T) {
	env := testApp(t)

	_, err := executeCmd(t, env.app, "what time do you open\n N \nbye\n", "chat")
	require.NoError(t, err)

	fb := env.feedback.Feedback()
	require.Len(t, fb, 1)
	assert.False(t, fb[0].Helpful)
}

func TestChat_UnloggableVoteIsDropped(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "what time\rdo you open\ny\nbye\n", "chat")
	require.NoError(t, err)

	assert.Contains(t, out, "Bot: "+testutil.HoursAnswer)
	assert.Contains(t, out, "Goodbye!")
	assert.Empty(t, env.feedback.Feedback())
}

func TestChat_ClarificationDoesNotAskForFeedback(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "tell me about your fabrics and designs\nbye\n", "chat")
	require.NoError(t, err)

	assert.Contains(t, out, "Fabric Types or Custom Designs? Could you please clarify?")
	assert.NotContains(t, out, "Was this helpful?")
}

func TestChat_BlankLinesAreIgnored(t *testing.T) {
	env := testApp(t)

	_, err := executeCmd(t, env.app, "\n   \nbye\n", "chat")
	require.NoError(t, err)

	assert.Empty(t, env.unanswered.Unanswered())
}

func TestChat_EndOfInputSaysGoodbye(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "what time do you open\n", "chat")
	require.NoError(t, err)

	assert.Contains(t, out, "Was this helpful? (y/n): \nBot: Thank you for visiting Amaze Africa Fabrics. Goodbye!\n")
	assert.Empty(t, env.feedback.Feedback())
}

func TestChat_FeedbackSinkFailureKeepsChatting(t *testing.T) {
	env := testApp(t)
	env.feedback.Err = assert.AnError

	out, err := executeCmd(t, env.app, "what time do you open\ny\nbye\n", "chat")
	require.NoError(t, err)

	assert.Contains(t, out, "Goodbye!")
}
