package domain

import "github.com/itchan-dev/forumapi/shared/errors"

// Thread is a validated thread creation request. It is only obtainable through
// NewThread and cannot be changed afterwards.
type Thread struct {
	title ThreadTitle
	body  ThreadBody
	owner UserId
}

// NewThread validates payload. It needs "title", "body" and "owner", all strings.
func NewThread(payload Payload) (Thread, error) {
	if err := requireStrings(errors.EntityPostThread, payload, "title", "body", "owner"); err != nil {
		return Thread{}, err
	}
	return Thread{
		title: payload["title"].(string),
		body:  payload["body"].(string),
		owner: payload["owner"].(string),
	}, nil
}

func (t Thread) Title() ThreadTitle { return t.title }
func (t Thread) Body() ThreadBody   { return t.body }
func (t Thread) Owner() UserId      { return t.owner }

// to iterate thru layers: service -> storage
type ThreadCreationData struct {
	Id    ThreadId
	Title ThreadTitle
	Body  ThreadBody
	Owner UserId
}

// AddedThread is what storage confirms after persisting a thread.
type AddedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}
